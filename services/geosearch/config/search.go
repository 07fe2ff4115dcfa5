package config

import (
	"github.com/xichen2020/geosearch/search"

	"github.com/m3db/m3/src/x/instrument"
)

// SearchConfiguration provides configuration for geo radius searches.
type SearchConfiguration struct {
	BlockSize             *int32   `yaml:"blockSize"`
	MinimumDistanceMeters *float64 `yaml:"minimumDistanceMeters"`
}

// NewOptions creates a new set of search options.
func (c *SearchConfiguration) NewOptions(instrumentOpts instrument.Options) *search.Options {
	opts := search.NewOptions().SetInstrumentOptions(instrumentOpts)
	if c.BlockSize != nil {
		opts = opts.SetBlockSize(*c.BlockSize)
	}
	if c.MinimumDistanceMeters != nil {
		opts = opts.SetMinimumDistanceMeters(*c.MinimumDistanceMeters)
	}
	return opts
}
