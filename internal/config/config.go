// Package config loads service configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration for the dashboard gateway and fleetsim.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Server    ServerConfig    `yaml:"server"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Sim       SimConfig       `yaml:"sim"`
}

// APIConfig points at the remote fleet API and carries the service account
// used to authenticate against it.
type APIConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Email    string        `yaml:"email"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

// ServerConfig is the gateway's listen address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DashboardConfig tunes aggregation.
type DashboardConfig struct {
	// OnTimePolicy is "completed" or "completed_and_failed".
	OnTimePolicy string `yaml:"on_time_policy"`
	PageSize     int    `yaml:"page_size"`
}

// SimConfig configures the fleetsim mock API.
type SimConfig struct {
	Port      int    `yaml:"port"`
	JWTSecret string `yaml:"jwt_secret"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Trucks    int    `yaml:"trucks"`
	Drivers   int    `yaml:"drivers"`
	Trips     int    `yaml:"trips"`
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty or the file does not exist), then applies environment overrides on
// top of the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000/api/v1",
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Dashboard: DashboardConfig{
			OnTimePolicy: "completed",
		},
		Sim: SimConfig{
			Port:      8000,
			JWTSecret: "dev-secret-change-me",
			Email:     "ops@example.com",
			Password:  "fleet-demo",
			Trucks:    12,
			Drivers:   8,
			Trips:     40,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FLEET_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("FLEET_API_EMAIL"); v != "" {
		cfg.API.Email = v
	}
	if v := os.Getenv("FLEET_API_PASSWORD"); v != "" {
		cfg.API.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ON_TIME_POLICY"); v != "" {
		cfg.Dashboard.OnTimePolicy = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Sim.JWTSecret = v
	}
	if v := os.Getenv("SIM_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Sim.Port = port
		}
	}
}
