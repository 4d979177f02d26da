package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations ("15m", "30s").
type StructuredJSONConfig struct {
	App struct {
		FrontendURL             string   `json:"frontend_url"`
		ResetTokenTTL           Duration `json:"reset_token_ttl"`
		ResetTokenSweepInterval Duration `json:"reset_token_sweep_interval"`
		PasswordHashCost        int      `json:"password_hash_cost"`
		LogLevel                string   `json:"log_level"`
		Version                 string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Documents struct {
			URI               string `json:"uri"`
			Database          string `json:"database"`
			RecipesCollection string `json:"recipes_collection"`
		} `json:"documents,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Notifier struct {
		SMTP struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			FromName string `json:"from_name"`
		} `json:"smtp,omitempty"`

		Rabbit struct {
			URL        string `json:"url"`
			Exchange   string `json:"exchange"`
			RoutingKey string `json:"routing_key"`
		} `json:"rabbit,omitempty"`
	} `json:"notifier,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			FrontendURL:             jsonCfg.App.FrontendURL,
			ResetTokenTTL:           time.Duration(jsonCfg.App.ResetTokenTTL),
			ResetTokenSweepInterval: time.Duration(jsonCfg.App.ResetTokenSweepInterval),
			PasswordHashCost:        jsonCfg.App.PasswordHashCost,
			LogLevel:                jsonCfg.App.LogLevel,
			Version:                 jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Documents: Documents{
				URI:               jsonCfg.Storage.Documents.URI,
				Database:          jsonCfg.Storage.Documents.Database,
				RecipesCollection: jsonCfg.Storage.Documents.RecipesCollection,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Notifier: Notifier{
			SMTP: SMTP{
				Host:     jsonCfg.Notifier.SMTP.Host,
				Port:     jsonCfg.Notifier.SMTP.Port,
				Username: jsonCfg.Notifier.SMTP.Username,
				Password: jsonCfg.Notifier.SMTP.Password,
				FromName: jsonCfg.Notifier.SMTP.FromName,
			},
			Rabbit: Rabbit{
				URL:        jsonCfg.Notifier.Rabbit.URL,
				Exchange:   jsonCfg.Notifier.Rabbit.Exchange,
				RoutingKey: jsonCfg.Notifier.Rabbit.RoutingKey,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
