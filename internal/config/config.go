package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	PDFService PDFServiceConfig `mapstructure:"pdf_service" validate:"required"`
}

// LoggingConfig contains the logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// PDFServiceConfig contains the settings of the external document
// generation service.
type PDFServiceConfig struct {
	URL     string        `mapstructure:"url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}
