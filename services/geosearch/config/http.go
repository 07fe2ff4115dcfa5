package config

import (
	"time"

	"github.com/xichen2020/geosearch/search"
	httpserver "github.com/xichen2020/geosearch/server/http"
	"github.com/xichen2020/geosearch/server/http/handlers"

	"github.com/m3db/m3/src/x/instrument"
)

// HTTPServerConfiguration provides HTTP server configuration.
type HTTPServerConfiguration struct {
	ListenAddress string               `yaml:"listenAddress" validate:"nonzero"`
	ReadTimeout   *time.Duration       `yaml:"readTimeout"`
	WriteTimeout  *time.Duration       `yaml:"writeTimeout"`
	EnablePprof   bool                 `yaml:"enablePprof"`
	Handler       handlerConfiguration `yaml:"handler"`
}

// NewServerOptions creates a new set of server options from the supplied config.
func (c *HTTPServerConfiguration) NewServerOptions(instrumentOpts instrument.Options) *httpserver.Options {
	opts := httpserver.NewOptions().
		SetInstrumentOptions(instrumentOpts).
		SetEnablePprof(c.EnablePprof)
	if c.ReadTimeout != nil {
		opts = opts.SetReadTimeout(*c.ReadTimeout)
	}
	if c.WriteTimeout != nil {
		opts = opts.SetWriteTimeout(*c.WriteTimeout)
	}
	return opts
}

type handlerConfiguration struct {
	DefaultLimit     *int       `yaml:"defaultLimit"`
	MaxLimit         *int       `yaml:"maxLimit"`
	DefaultSortOrder *sortOrder `yaml:"defaultSort"`
}

// NewOptions creates a new set of handler options.
func (c *handlerConfiguration) NewOptions(
	instrumentOpts instrument.Options,
	searchOpts *search.Options,
) *handlers.Options {
	opts := handlers.NewOptions().
		SetInstrumentOptions(instrumentOpts).
		SetSearchOptions(searchOpts)
	if c.DefaultLimit != nil {
		opts = opts.SetDefaultLimit(*c.DefaultLimit)
	}
	if c.MaxLimit != nil {
		opts = opts.SetMaxLimit(*c.MaxLimit)
	}
	if c.DefaultSortOrder != nil {
		opts = opts.SetDefaultSortOrder(search.SortOrder(*c.DefaultSortOrder))
	}
	return opts
}

// sortOrder is a custom type for unmarshaling a search sort order.
type sortOrder search.SortOrder

// UnmarshalYAML implements the Unmarshaler interface for the `sortOrder` type.
func (o *sortOrder) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	v, err := search.ParseSortOrder(str)
	if err != nil {
		return err
	}
	*o = sortOrder(v)
	return nil
}
