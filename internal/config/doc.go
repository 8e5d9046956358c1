// Package config defines the application configuration and its loading
// logic. Configuration is read from environment variables (QUIZFOLIO_
// prefix) and an optional config file, then validated before use.
package config
