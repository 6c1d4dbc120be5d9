package main

import (
	"fmt"
	"os"
	"time"

	"github.com/newsninja/newsninja/internal/domain"
	"gopkg.in/yaml.v3"
)

// PipelineConfig is the optional YAML run configuration. Anything left
// unset keeps its default: the built-in country list and the standard
// pacing between generations.
type PipelineConfig struct {
	Countries []domain.Country `yaml:"countries"`

	// Provider names tried in order. Empty lists keep the defaults:
	// serpapi for trends, google then duckduckgo then google-news for
	// research.
	TrendProviders  []string `yaml:"trendProviders"`
	SearchProviders []string `yaml:"searchProviders"`

	Delays struct {
		TopicSeconds   *int `yaml:"topicSeconds"`
		CountrySeconds *int `yaml:"countrySeconds"`
	} `yaml:"delays"`
}

func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	var cfg PipelineConfig
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse pipeline config: %w", err)
	}

	for _, c := range cfg.Countries {
		if c.Code == "" || c.Name == "" {
			return nil, fmt.Errorf("pipeline config: every country needs code and name, got %+v", c)
		}
	}

	return &cfg, nil
}

func (c *PipelineConfig) CountryList() []domain.Country {
	if len(c.Countries) > 0 {
		return c.Countries
	}
	return domain.DefaultCountries
}

func (c *PipelineConfig) TopicDelay(def time.Duration) time.Duration {
	if c.Delays.TopicSeconds != nil {
		return time.Duration(*c.Delays.TopicSeconds) * time.Second
	}
	return def
}

func (c *PipelineConfig) CountryDelay(def time.Duration) time.Duration {
	if c.Delays.CountrySeconds != nil {
		return time.Duration(*c.Delays.CountrySeconds) * time.Second
	}
	return def
}
