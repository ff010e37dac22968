package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TMDB         TMDB         `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Mirror       Mirror       `json:"mirror" yaml:"mirror" mapstructure:"mirror"`
	Availability Availability `json:"availability" yaml:"availability" mapstructure:"availability"`
	Server       Server       `json:"server" yaml:"server" mapstructure:"server"`
	RateLimit    RateLimit    `json:"rateLimit" yaml:"rateLimit" mapstructure:"rateLimit"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// URL is the catalog server root
func (t TMDB) URL() string {
	return fmt.Sprintf("%s://%s", t.Scheme, t.Host)
}

// Mirror is the streaming mirror whose pages are probed
type Mirror struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
}

// Availability tunes the mirror probes
type Availability struct {
	ProbeTimeout        time.Duration `json:"probeTimeout" yaml:"probeTimeout" mapstructure:"probeTimeout"`
	MaxConcurrentProbes int           `json:"maxConcurrentProbes" yaml:"maxConcurrentProbes" mapstructure:"maxConcurrentProbes"`
	// Timeout bounds a whole availability check, zero disables it
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

type Server struct {
	Port           int      `json:"port" yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins" mapstructure:"allowedOrigins"`
}

// RateLimit is the per client request budget of the api
type RateLimit struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute" mapstructure:"requestsPerMinute"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
