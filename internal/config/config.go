// Package config loads stateinfo settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/cxlvinchau/probabilistic-model-checking/dtmc"
)

// Prefix is prepended to every environment variable, e.g. DTMC_STATES.
const Prefix = "dtmc"

// Output formats understood by stateinfo.
const (
	FormatText  = "text"
	FormatDebug = "debug"
	FormatDOT   = "dot"
	FormatTable = "table"
)

// Config represents all configuration properties
type Config struct {
	/*States lists the states to build, comma separated. Each entry is
	id[:name[:ap|ap...]]*/
	States []string `json:"states" default:"0"`
	//Format is one of text, debug, dot or table
	Format string `json:"format" default:"text"`
	//Verbose enables debug logging
	Verbose bool `json:"verbose" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the output format.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatDebug, FormatDOT, FormatTable:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q", dtmc.ErrInvalidArgument, c.Format)
	}
}

// BuildStates parses every entry of c.States, preserving order.
func (c *Config) BuildStates() ([]dtmc.State, error) {
	states := make([]dtmc.State, 0, len(c.States))
	for _, entry := range c.States {
		s, err := ParseState(entry)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

// ParseState parses one id[:name[:ap|ap...]] entry.
func ParseState(entry string) (dtmc.State, error) {
	parts := strings.SplitN(entry, ":", 3)

	id, err := dtmc.ParseStateID(parts[0])
	if err != nil {
		return dtmc.State{}, err
	}

	var opts []dtmc.StateOption
	if len(parts) > 1 {
		opts = append(opts, dtmc.WithName(strings.TrimSpace(parts[1])))
	}
	if len(parts) > 2 {
		props, err := dtmc.ParsePropositions(parts[2], "|")
		if err != nil {
			return dtmc.State{}, fmt.Errorf("state %d: %w", id, err)
		}
		opts = append(opts, dtmc.WithAP(props...))
	}

	return dtmc.NewState(id, opts...), nil
}
