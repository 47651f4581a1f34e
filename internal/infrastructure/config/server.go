package config

import "time"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`

	// Request timeouts
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Dispatch rate limiting (requests per second; 0 disables)
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds dispatch throttling configuration
type RateLimitConfig struct {
	Requests float64 `mapstructure:"requests" validate:"min=0"`
	Burst    int     `mapstructure:"burst" validate:"min=0"`
}
