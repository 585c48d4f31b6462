package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/solar"
)

type Config struct {
	Location solar.Location `json:"location"`
	Jobs     []Job          `json:"jobs"`
}

// Job defines which zman to announce, how far from the zman proper to
// fire, and the message to log when it does.
//
// Offset is a Go duration string; negative values fire before the
// zman, e.g. "-18m" for candle lighting ahead of shekiah.
type Job struct {
	Zman    string `json:"zman"`
	Offset  string `json:"offset,omitempty"`
	Message string `json:"message,omitempty"`
}

func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var config Config
	err = json.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", c.Location.Longitude)
	}

	for _, job := range c.Jobs {
		if _, err := zmanim.ParseZman(job.Zman); err != nil {
			return fmt.Errorf("job references unknown zman %q", job.Zman)
		}
		if job.Offset != "" {
			if _, err := time.ParseDuration(job.Offset); err != nil {
				return fmt.Errorf("job %q: parse offset: %w", job.Zman, err)
			}
		}
	}

	return nil
}
