package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from the process environment. Nested
// groups are resolved through their envPrefix tags; unset variables leave
// zero values for the builder to merge over.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse env configs: %w", err)
	}
	return &cfg, nil
}
