package search

import (
	"github.com/m3db/m3/src/x/instrument"
)

const (
	// DefaultBlockSize is the default number of documents covered by a block.
	DefaultBlockSize = 16384
)

// Options provide a set of options for distance iterators.
type Options struct {
	instrumentOpts        instrument.Options
	blockSize             int32
	minimumDistanceMeters float64
	blockProvider         BlockProvider
}

// NewOptions creates a new set of options.
func NewOptions() *Options {
	return &Options{
		instrumentOpts:        instrument.NewOptions(),
		blockSize:             DefaultBlockSize,
		minimumDistanceMeters: DefaultMinimumDistanceMeters,
		blockProvider:         NewScanBlockProvider(),
	}
}

// SetInstrumentOptions sets the instrument options.
func (o *Options) SetInstrumentOptions(v instrument.Options) *Options {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *Options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetBlockSize sets the number of documents covered by a block.
func (o *Options) SetBlockSize(v int32) *Options {
	opts := *o
	opts.blockSize = v
	return &opts
}

// BlockSize returns the number of documents covered by a block.
func (o *Options) BlockSize() int32 {
	return o.blockSize
}

// SetMinimumDistanceMeters sets the distance at and below which documents score 1.0.
func (o *Options) SetMinimumDistanceMeters(v float64) *Options {
	opts := *o
	opts.minimumDistanceMeters = v
	return &opts
}

// MinimumDistanceMeters returns the distance at and below which documents score 1.0.
func (o *Options) MinimumDistanceMeters() float64 {
	return o.minimumDistanceMeters
}

// SetBlockProvider sets the block provider.
func (o *Options) SetBlockProvider(v BlockProvider) *Options {
	opts := *o
	opts.blockProvider = v
	return &opts
}

// BlockProvider returns the block provider.
func (o *Options) BlockProvider() BlockProvider {
	return o.blockProvider
}
