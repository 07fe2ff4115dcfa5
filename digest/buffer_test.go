package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferDigestLittleEndian(t *testing.T) {
	inputs := []struct {
		digest   uint32
		expected []byte
	}{
		{digest: 0, expected: []byte{0x0, 0x0, 0x0, 0x0}},
		{digest: 2, expected: []byte{0x2, 0x0, 0x0, 0x0}},
		{digest: 0x1000100, expected: []byte{0x0, 0x1, 0x0, 0x1}},
		{digest: 0xdeadbeef, expected: []byte{0xef, 0xbe, 0xad, 0xde}},
	}
	for _, input := range inputs {
		buf := NewBuffer()
		buf.WriteDigest(input.digest)
		require.Equal(t, input.expected, []byte(buf))
		require.Equal(t, input.digest, ToBuffer(input.expected).ReadDigest())
	}
}

func TestToBufferIgnoresTrailingBytes(t *testing.T) {
	buf := ToBuffer([]byte{0x14, 0x0, 0x0, 0x0, 0xff, 0xff})
	require.Len(t, buf, DigestLenBytes)
	require.Equal(t, uint32(20), buf.ReadDigest())
}

func TestValidate(t *testing.T) {
	payload := []byte("segment payload")
	trailer := NewBuffer()
	trailer.WriteDigest(Checksum(payload))
	data := append(append([]byte(nil), payload...), trailer...)

	validated, err := Validate(data)
	require.NoError(t, err)
	require.Equal(t, payload, validated)

	data[0] ^= 0x1
	_, err = Validate(data)
	require.Equal(t, errChecksumMismatch, err)

	_, err = Validate([]byte{0x1, 0x2})
	require.Equal(t, errChecksumMismatch, err)
}
