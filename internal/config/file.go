// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of a JSON or YAML configuration file.
type fileConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" yaml:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
		Version          string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`

		Files struct {
			SnapshotPath    string `json:"snapshot_path" yaml:"snapshot_path"`
			CreateIfMissing bool   `json:"create_if_missing" yaml:"create_if_missing"`
		} `json:"files" yaml:"files"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins" yaml:"allowed_origins"`
	} `json:"server" yaml:"server"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML; everything else is treated as JSON with comments and
// trailing commas allowed.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", ".jsonc", "":
		std, err := hujson.Standardize(raw)
		if err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
		if err = json.Unmarshal(std, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     f.App.TokenSignKey,
			TokenIssuer:      f.App.TokenIssuer,
			TokenDuration:    time.Duration(f.App.TokenDuration),
			PasswordHashCost: f.App.PasswordHashCost,
			Version:          f.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: f.Storage.DB.Driver,
				DSN:    f.Storage.DB.DSN,
			},
			Files: Files{
				SnapshotPath:    f.Storage.Files.SnapshotPath,
				CreateIfMissing: f.Storage.Files.CreateIfMissing,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
			AllowedOrigins:  f.Server.AllowedOrigins,
		},
		Log: Log{Level: f.Log.Level},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
