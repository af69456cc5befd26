package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// config is the aiswatch runtime configuration. Flags override file values.
type config struct {
	Host   string
	Port   int
	Device string // serial device path; set to prefer serial over TCP
	Baud   int

	TargetExpiry time.Duration
	CPAWarnNM    float64
	LogLevel     string
}

func defaultConfig() config {
	return config{
		Host:         "localhost",
		Port:         10110,
		Baud:         4800,
		TargetExpiry: 10 * time.Minute,
		CPAWarnNM:    0.5,
		LogLevel:     "info",
	}
}

// fileConfig is the YAML shape; durations are strings like "10m".
type fileConfig struct {
	Host         *string  `yaml:"host"`
	Port         *int     `yaml:"port"`
	Device       *string  `yaml:"device"`
	Baud         *int     `yaml:"baud"`
	TargetExpiry *string  `yaml:"target-expiry"`
	CPAWarnNM    *float64 `yaml:"cpa-warn-nm"`
	LogLevel     *string  `yaml:"log-level"`
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config %v: %w", path, err)
	}
	if file.Host != nil {
		cfg.Host = *file.Host
	}
	if file.Port != nil {
		cfg.Port = *file.Port
	}
	if file.Device != nil {
		cfg.Device = *file.Device
	}
	if file.Baud != nil {
		cfg.Baud = *file.Baud
	}
	if file.TargetExpiry != nil {
		d, err := time.ParseDuration(*file.TargetExpiry)
		if err != nil {
			return cfg, fmt.Errorf("parse config %v: target-expiry: %w", path, err)
		}
		cfg.TargetExpiry = d
	}
	if file.CPAWarnNM != nil {
		cfg.CPAWarnNM = *file.CPAWarnNM
	}
	if file.LogLevel != nil {
		cfg.LogLevel = *file.LogLevel
	}
	return cfg, nil
}
