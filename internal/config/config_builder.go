package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultHTTPAddress       = ":3000"
	defaultResetTokenTTL     = 15 * time.Minute
	defaultResetTokenSweep   = time.Hour
	defaultPasswordHashCost  = 10
	defaultShutdownTimeout   = 10 * time.Second
	defaultDocumentsDatabase = "recipesDB"
	defaultRecipesCollection = "recipes"
	defaultSMTPPort          = 587
	defaultSMTPFromName      = "Support"
	defaultRabbitExchange    = "recipes.events"
	defaultRabbitRoutingKey  = "password.reset_requested"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withDefaults appends the built-in defaults. Merging never overwrites a
// non-zero value, so the defaults only fill fields no other source set.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ResetTokenTTL:           defaultResetTokenTTL,
			ResetTokenSweepInterval: defaultResetTokenSweep,
			PasswordHashCost:        defaultPasswordHashCost,
		},
		Storage: Storage{
			Documents: Documents{
				Database:          defaultDocumentsDatabase,
				RecipesCollection: defaultRecipesCollection,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Notifier: Notifier{
			SMTP: SMTP{
				Port:     defaultSMTPPort,
				FromName: defaultSMTPFromName,
			},
			Rabbit: Rabbit{
				Exchange:   defaultRabbitExchange,
				RoutingKey: defaultRabbitRoutingKey,
			},
		},
	}
}
