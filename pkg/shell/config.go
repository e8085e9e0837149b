package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Twisol/molt/pkg/errutil"
)

// Config keeps the settings read from config.yaml.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation-prompt"`
	// Path of the history database. The empty string disables history.
	History        *string `yaml:"history"`
	RecursionLimit int     `yaml:"recursion-limit"`
	RC             *string `yaml:"rc"`
}

// Default prompts.
const (
	DefaultPrompt             = "% "
	DefaultContinuationPrompt = "> "
)

// LoadConfig reads the config file at path. A missing file is not an error
// unless mustExist is true; it yields a Config with only defaults.
func LoadConfig(path string, mustExist bool) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			logger.Println("no config file at", path)
			cfg.fillDefaults()
			return cfg, nil
		}
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.RecursionLimit < 0 {
		return nil, fmt.Errorf("%s: recursion-limit must not be negative", path)
	}
	logger.Println("loaded config from", path)
	cfg.fillDefaults()
	return cfg, nil
}

func (cfg *Config) fillDefaults() {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.ContinuationPrompt == "" {
		cfg.ContinuationPrompt = DefaultContinuationPrompt
	}
}

// Resolves the paths to use, in order of precedence: CLI flags, the config
// file and the defaults.
func (cfg *Config) paths(rcFlag string, noRc bool) (Paths, error) {
	var p Paths
	var rcErr, historyErr error
	switch {
	case noRc:
	case rcFlag != "":
		p.RC = rcFlag
	case cfg.RC != nil:
		p.RC = *cfg.RC
	default:
		p.RC, rcErr = RCPath()
	}
	if cfg.History != nil {
		p.History = *cfg.History
	} else {
		p.History, historyErr = HistoryPath()
	}
	return p, errutil.Multi(rcErr, historyErr)
}
