package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hireloop/scheduler/internal/api"
	"github.com/hireloop/scheduler/internal/calendar"
	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/pkg/environment"
	"github.com/hireloop/scheduler/pkg/errors"
)

type Config struct {
	Environment environment.Env        `yaml:"Environment"`
	Mongo       interviews.MongoConfig `yaml:"Mongo"`
	Google      calendar.GoogleConfig  `yaml:"Google"`
	API         api.Config             `yaml:"API"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	err = cfg.API.Availability.Validate()
	if err != nil {
		return nil, errors.WrapFail(err, "validate availability config")
	}

	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	if raw == nil {
		return nil
	}

	env := environment.FromString(*raw)
	return &env
}
