// Package config is used to load the configuration file
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"binobj/internal/bin"
)

var requests = map[string]bin.Req{
	"relocs":  bin.ReqRelocs,
	"imports": bin.ReqImports,
	"strings": bin.ReqStrings,
	"classes": bin.ReqClasses,
	"symbols": bin.ReqSymbols,
	"all":     bin.ReqAll,
}

// Config is the configuration struct
type Config struct {
	MinStrLen int      `mapstructure:"minstrlen"`
	Filter    bool     `mapstructure:"filter"`
	Debase64  bool     `mapstructure:"debase64"`
	RawStr    bool     `mapstructure:"rawstr"`
	Extract   []string `mapstructure:"extract"`
	// BaseAddr and LoadAddr accept any strconv base prefix; empty means unset.
	BaseAddr string `mapstructure:"baddr"`
	LoadAddr string `mapstructure:"laddr"`
	Verbose  bool   `mapstructure:"verbose"`
	Color    bool   `mapstructure:"color"`

	rules    bin.Req
	baseAddr uint64
	loadAddr uint64
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("filter", true)
	v.SetDefault("extract", []string{"all"})
}

func parseAddr(s string) (uint64, error) {
	if s == "" {
		return bin.NoAddr, nil
	}
	return strconv.ParseUint(s, 0, 64)
}

func (c *Config) verify() error {
	if c.MinStrLen < 0 {
		return errors.New("minstrlen must not be negative")
	}
	c.rules = 0
	for _, name := range c.Extract {
		r, ok := requests[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return errors.Errorf("unknown extract rule %q", name)
		}
		c.rules |= r
	}
	if len(c.Extract) == 0 {
		c.rules = bin.ReqAll
	}
	var err error
	if c.baseAddr, err = parseAddr(c.BaseAddr); err != nil {
		return errors.Wrapf(err, "invalid baddr %q", c.BaseAddr)
	}
	if c.loadAddr, err = parseAddr(c.LoadAddr); err != nil {
		return errors.Wrapf(err, "invalid laddr %q", c.LoadAddr)
	}
	return nil
}

// Load unmarshals and verifies the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c *Config

	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: failed to unmarshal")
	}
	if c == nil {
		c = &Config{}
	}

	if err := c.verify(); err != nil {
		return nil, errors.Wrap(err, "config: failed to verify")
	}

	return c, nil
}

// LoadConfig loads the configuration file
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Options converts the configuration to object construction options.
func (c *Config) Options() bin.Options {
	return bin.Options{
		MinStrLen: c.MinStrLen,
		Filter:    c.Filter,
		Debase64:  c.Debase64,
		RawStr:    c.RawStr,
		Rules:     c.rules,
	}
}

// Addrs returns the requested base and load addresses, bin.NoAddr when unset.
func (c *Config) Addrs() (baseAddr, loadAddr uint64) {
	return c.baseAddr, c.loadAddr
}
