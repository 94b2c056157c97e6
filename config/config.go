package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvBaseURL        = "ROOM_BOOKER_BASE_URL"
	EnvTimeoutSeconds = "ROOM_BOOKER_TIMEOUT_SECONDS"
	EnvHotelID        = "ROOM_BOOKER_HOTEL_ID"
	EnvUserID         = "ROOM_BOOKER_USER_ID"
	EnvUserName       = "ROOM_BOOKER_USER_NAME"
)

// --- Config ---

// Config is the main configuration structure.
type Config struct {
	API     APIConfig  `yaml:"api"`
	HotelID string     `yaml:"hotel_id"`
	User    UserConfig `yaml:"user"`
}

// APIConfig describes where the hotel API lives.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-request timeout. Zero means no timeout.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// --- UserConfig ---

// UserConfig identifies the signed-in user the bookings are made for.
type UserConfig struct {
	UID  string `yaml:"uid"`
	Name string `yaml:"name"`
}

// Load reads the YAML config at path, applies any .env file found in the
// working directory and ROOM_BOOKER_* overrides, then validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// A missing .env is fine, the variables may come from the real environment.
	_ = godotenv.Load()
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeoutSeconds, v, err)
		}
		c.API.TimeoutSeconds = seconds
	}
	if v := os.Getenv(EnvHotelID); v != "" {
		c.HotelID = v
	}
	if v := os.Getenv(EnvUserID); v != "" {
		c.User.UID = v
	}
	if v := os.Getenv(EnvUserName); v != "" {
		c.User.Name = v
	}
	return nil
}

// Validate checks the fields the client cannot run without. The hotel id is
// optional here, it can still be supplied on the command line.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("Base_URL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("Base_URL must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("Timeout_Seconds must not be negative, got %d", c.API.TimeoutSeconds)
	}
	if c.User.UID == "" {
		return fmt.Errorf("UID is required")
	}
	return nil
}
