package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "duck.yaml"

// Config holds CLI settings. Flags override file values.
type Config struct {
	History  string `yaml:"history"`
	Prompt   string `yaml:"prompt"`
	Listen   string `yaml:"listen"`
	NoBanner bool   `yaml:"no_banner"`
}

func defaultConfig() Config {
	cfg := Config{Prompt: "> "}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, ".duck_history.db")
	} else {
		cfg.History = "duck_history.db"
	}
	return cfg
}

// loadConfig reads the given path, or duck.yaml in the working directory
// when no path is given. A missing implicit file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := parseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags lets explicit flag values win over file values.
func (c *Config) applyFlags(dbPath, listen string) {
	if dbPath != "" {
		c.History = dbPath
	}
	if listen != "" {
		c.Listen = listen
	}
}

// parseConfig rejects unknown keys so typos fail loudly instead of being
// silently ignored.
func parseConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
