package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/translit/pkg/cyrillic"
	"github.com/dmitrymomot/translit/pkg/logger"
)

// Config is the application configuration.
type Config struct {
	Translit cyrillic.Config `yaml:"translit"`
	Log      logger.Config   `yaml:"log"`
	Server   Server          `yaml:"server"`
	// File is the YAML file the configuration was read from, if any.
	File string `env:"TRANSLIT_CONFIG" yaml:"-"`
}

// Server holds HTTP server settings.
type Server struct {
	Address         string        `env:"HTTP_ADDR" envDefault:":8080" yaml:"address"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s" yaml:"shutdown_timeout"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"10s" yaml:"request_timeout"`
}

// noDefaults names a struct tag that is never set, so a parse pass applies
// only variables that are present in the environment.
const noDefaults = "envNoDefault"

// Load reads configuration with this precedence: struct defaults, then the
// YAML file, then environment variables. A .env file in the working directory
// is loaded into the environment first when present.
//
// path may be empty, in which case TRANSLIT_CONFIG names the file; with
// neither set no file is read.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Join(ErrDotEnv, err)
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}

	if path == "" {
		path = os.Getenv("TRANSLIT_CONFIG")
	}
	if path != "" {
		if err := readFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{DefaultValueTagName: noDefaults}); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
// Useful at startup.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks values that cannot be corrected silently.
// An unknown transliteration system is allowed: conversion degrades to identity.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return ErrEmptyAddress
	}
	if c.Server.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}
	if c.Server.RequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadFile, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Join(ErrParseFile, err)
	}
	return nil
}
