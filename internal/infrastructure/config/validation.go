package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/atorres/orderhub/internal/infrastructure/validation"
)

// ValidateConfig validates the entire configuration using the same
// tag-driven validator the request handlers use
func ValidateConfig(cfg *Config) error {
	failures := validation.New().Validate(context.Background(), cfg)
	if len(failures) == 0 {
		return nil
	}

	messages := make([]string, 0, len(failures))
	for _, f := range failures {
		messages = append(messages, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}
