package config

import (
	"cmp"
	"errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"strconv"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Ryanair Ryanair `yaml:"ryanair"`
}

type Server struct {
	Port int `yaml:"port" validate:"gte=1,lte=65535"`
}

type Ryanair struct {
	RoutesUrl    string `yaml:"routesUrl" validate:"omitempty,url"`
	SchedulesUrl string `yaml:"schedulesUrl" validate:"omitempty,url"`
	Operator     string `yaml:"operator" validate:"required"`
}

// Load reads the optional YAML config file, applies env overrides and
// defaults, and validates the result. A missing file is not an error; empty
// provider URLs fall back to the client's built-in endpoints.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	} else if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("FLIGHTS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, err
		}

		cfg.Server.Port = port
	}

	cfg.Server.Port = cmp.Or(cfg.Server.Port, 8080)
	cfg.Ryanair.RoutesUrl = cmp.Or(os.Getenv("FLIGHTS_ROUTES_API"), cfg.Ryanair.RoutesUrl)
	cfg.Ryanair.SchedulesUrl = cmp.Or(os.Getenv("FLIGHTS_SCHEDULES_API"), cfg.Ryanair.SchedulesUrl)
	cfg.Ryanair.Operator = cmp.Or(os.Getenv("FLIGHTS_OPERATOR"), cfg.Ryanair.Operator, "RYANAIR")

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
