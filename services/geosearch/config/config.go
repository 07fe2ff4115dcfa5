package config

import (
	"github.com/m3db/m3/src/x/instrument"
	xlog "github.com/m3db/m3/src/x/log"
)

// Configuration holds all geosearch config options.
type Configuration struct {
	Logging xlog.Configuration              `yaml:"logging"`
	Metrics instrument.MetricsConfiguration `yaml:"metrics"`
	Index   IndexConfiguration              `yaml:"index"`
	Search  SearchConfiguration             `yaml:"search"`
	HTTP    *HTTPServerConfiguration        `yaml:"http"`
}
