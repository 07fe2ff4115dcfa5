package config

import (
	"fmt"

	"github.com/xichen2020/geosearch/index"
	"github.com/xichen2020/geosearch/persist"
	"github.com/xichen2020/geosearch/persist/fs"

	"github.com/m3db/m3/src/x/instrument"
)

// IndexConfiguration provides configuration for the persisted index.
type IndexConfiguration struct {
	FilePathPrefix  string           `yaml:"filePathPrefix" validate:"nonzero"`
	WriteBufferSize *int             `yaml:"writeBufferSize"`
	DeletedDocsFile *string          `yaml:"deletedDocsFile"`
	DeletedDocsType *deletedDocsType `yaml:"deletedDocsType"`
}

// NewFileSystemOptions creates a new set of filesystem options.
func (c *IndexConfiguration) NewFileSystemOptions(instrumentOpts instrument.Options) *fs.Options {
	opts := fs.NewOptions().
		SetFilePathPrefix(c.FilePathPrefix).
		SetInstrumentOptions(instrumentOpts)
	if c.WriteBufferSize != nil {
		opts = opts.SetWriteBufferSize(*c.WriteBufferSize)
	}
	return opts
}

// NewDeletedDocs loads the deleted documents of an index holding the given
// number of documents.
func (c *IndexConfiguration) NewDeletedDocs(
	reader persist.SegmentReader,
	numTotalDocs int32,
) (index.DeletedDocs, error) {
	if c.DeletedDocsFile == nil {
		return index.NoDeletedDocs, nil
	}
	docIDs, err := reader.ReadDeletedDocs(*c.DeletedDocsFile)
	if err != nil {
		return nil, err
	}
	t := bitmapDeletedDocsType
	if c.DeletedDocsType != nil {
		t = *c.DeletedDocsType
	}
	switch t {
	case denseDeletedDocsType:
		return index.NewDenseDeletedDocs(numTotalDocs, docIDs.Iter())
	default:
		return index.NewDeletedDocs(docIDs), nil
	}
}

// deletedDocsType determines how deleted documents are held in memory.
type deletedDocsType int

const (
	// Deleted docs are kept in a compressed bitmap.
	bitmapDeletedDocsType deletedDocsType = iota

	// Deleted docs are kept in a bitset with one bit per document in the index.
	denseDeletedDocsType
)

var (
	validDeletedDocsTypes = map[string]deletedDocsType{
		"bitmap": bitmapDeletedDocsType,
		"dense":  denseDeletedDocsType,
	}
)

// UnmarshalYAML implements the Unmarshaler interface for the `deletedDocsType` type.
func (t *deletedDocsType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	v, exists := validDeletedDocsTypes[str]
	if !exists {
		return fmt.Errorf("invalid deleted docs type %s", str)
	}
	*t = v
	return nil
}
