// Package config loads the gateway's environment-supplied configuration
// record. All other knobs (iteration cap, tool timeout, output cap,
// sensitive-prefix list, command whitelist) are compile-time constants
// elsewhere in the tree, by design.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the single environment-supplied record consumed at startup.
type Config struct {
	UpstreamBaseURL string   `mapstructure:"upstream_base_url"`
	UpstreamAPIKey  string   `mapstructure:"upstream_api_key"`
	AllowedModels   []string `mapstructure:"allowed_models"`
	Port            int      `mapstructure:"port"`
	SteeringPrompt  string   `mapstructure:"steering_prompt"`
}

// Load reads configuration from the environment, prefixed ACTGATE_:
// ACTGATE_UPSTREAM_BASE_URL, ACTGATE_UPSTREAM_API_KEY,
// ACTGATE_ALLOWED_MODELS (comma-separated), ACTGATE_PORT,
// ACTGATE_STEERING_PROMPT (optional).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("actgate")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("upstream_base_url", "https://api.openai.com")

	cfg := &Config{
		UpstreamBaseURL: v.GetString("upstream_base_url"),
		UpstreamAPIKey:  v.GetString("upstream_api_key"),
		Port:            v.GetInt("port"),
		SteeringPrompt:  v.GetString("steering_prompt"),
	}

	if raw := v.GetString("allowed_models"); raw != "" {
		for _, m := range strings.Split(raw, ",") {
			m = strings.TrimSpace(m)
			if m != "" {
				cfg.AllowedModels = append(cfg.AllowedModels, m)
			}
		}
	}

	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("ACTGATE_UPSTREAM_BASE_URL is required")
	}

	return cfg, nil
}

// ModelAllowed reports whether model is permitted. An empty allowlist
// permits every model.
func (c *Config) ModelAllowed(model string) bool {
	if len(c.AllowedModels) == 0 {
		return true
	}
	for _, m := range c.AllowedModels {
		if m == model {
			return true
		}
	}
	return false
}
