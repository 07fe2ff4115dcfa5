package handlers

import (
	"github.com/xichen2020/geosearch/search"

	"github.com/m3db/m3/src/x/instrument"
)

const (
	defaultLimit     = 10
	defaultMaxLimit  = 1000
	defaultSortOrder = search.SortByDocID
)

// Options provide a set of options for service handlers.
type Options struct {
	instrumentOpts   instrument.Options
	searchOpts       *search.Options
	defaultLimit     int
	maxLimit         int
	defaultSortOrder search.SortOrder
}

// NewOptions create a new set of options.
func NewOptions() *Options {
	return &Options{
		instrumentOpts:   instrument.NewOptions(),
		searchOpts:       search.NewOptions(),
		defaultLimit:     defaultLimit,
		maxLimit:         defaultMaxLimit,
		defaultSortOrder: defaultSortOrder,
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

// SetSearchOptions sets the options of the distance iterators serving searches.
func (o *Options) SetSearchOptions(v *search.Options) *Options {
	opts := *o
	opts.searchOpts = v
	return &opts
}

// SearchOptions returns the options of the distance iterators serving searches.
func (o *Options) SearchOptions() *search.Options {
	return o.searchOpts
}

// SetDefaultLimit sets the number of hits returned when a request has no limit.
func (o *Options) SetDefaultLimit(v int) *Options {
	opts := *o
	opts.defaultLimit = v
	return &opts
}

// DefaultLimit returns the number of hits returned when a request has no limit.
func (o *Options) DefaultLimit() int {
	return o.defaultLimit
}

// SetMaxLimit sets the maximum number of hits a request may ask for.
func (o *Options) SetMaxLimit(v int) *Options {
	opts := *o
	opts.maxLimit = v
	return &opts
}

// MaxLimit returns the maximum number of hits a request may ask for.
func (o *Options) MaxLimit() int {
	return o.maxLimit
}

// SetDefaultSortOrder sets the sort order used when a request has none.
func (o *Options) SetDefaultSortOrder(v search.SortOrder) *Options {
	opts := *o
	opts.defaultSortOrder = v
	return &opts
}

// DefaultSortOrder returns the sort order used when a request has none.
func (o *Options) DefaultSortOrder() search.SortOrder {
	return o.defaultSortOrder
}
