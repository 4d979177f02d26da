// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// recipe-tracker server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: reset-link base URL, token
	// lifetime, password hashing cost, log level and version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// recipe document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Notifier holds outbound delivery settings for password reset
	// notifications (SMTP or RabbitMQ).
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// FrontendURL is the base URL of the web client. Reset links are built
	// as FrontendURL + "/reset-password?token=...".
	// Env: APP_FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// ResetTokenTTL is how long a password reset token stays redeemable.
	// Env: APP_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// ResetTokenSweepInterval is how often expired reset tokens are purged.
	// Zero disables the sweeper.
	// Env: APP_RESET_TOKEN_SWEEP_INTERVAL
	ResetTokenSweepInterval time.Duration `env:"RESET_TOKEN_SWEEP_INTERVAL"`

	// PasswordHashCost is the bcrypt cost factor used for password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel narrows the global log level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Documents holds the recipe document store settings.
	Documents Documents `envPrefix:"DOCUMENTS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme:
	//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
	//   - "sqlite://path" or "file:path": SQLite via go-sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool size. Zero keeps the default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Documents holds connection settings for the MongoDB recipe store.
type Documents struct {
	// URI is the MongoDB connection string.
	// Env: STORAGE_DOCUMENTS_URI
	URI string `env:"URI"`

	// Database is the MongoDB database name.
	// Env: STORAGE_DOCUMENTS_DATABASE
	Database string `env:"DATABASE"`

	// RecipesCollection is the name of the collection holding recipes.
	// Env: STORAGE_DOCUMENTS_RECIPES_COLLECTION
	RecipesCollection string `env:"RECIPES_COLLECTION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000" or ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Notifier selects and configures the password reset delivery channel.
// When Rabbit.URL is set events are published to RabbitMQ; otherwise, when
// SMTP.Host is set emails are sent directly; otherwise reset links are only
// logged.
type Notifier struct {
	SMTP   SMTP   `envPrefix:"SMTP_"`
	Rabbit Rabbit `envPrefix:"RABBIT_"`
}

// SMTP holds outbound mail credentials.
type SMTP struct {
	// Env: NOTIFIER_SMTP_HOST
	Host string `env:"HOST"`
	// Env: NOTIFIER_SMTP_PORT
	Port int `env:"PORT"`
	// Username is also used as the sender address.
	// Env: NOTIFIER_SMTP_USERNAME
	Username string `env:"USERNAME"`
	// Env: NOTIFIER_SMTP_PASSWORD
	Password string `env:"PASSWORD"`
	// FromName is the display name of the sender.
	// Env: NOTIFIER_SMTP_FROM_NAME
	FromName string `env:"FROM_NAME"`
}

// Rabbit holds RabbitMQ publishing settings.
type Rabbit struct {
	// Env: NOTIFIER_RABBIT_URL
	URL string `env:"URL"`
	// Env: NOTIFIER_RABBIT_EXCHANGE
	Exchange string `env:"EXCHANGE"`
	// Env: NOTIFIER_RABBIT_ROUTING_KEY
	RoutingKey string `env:"ROUTING_KEY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
