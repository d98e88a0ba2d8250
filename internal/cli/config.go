package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/diagramlab/stencil/pkg/store"
)

// Config holds the stencil configuration, loaded from
// ~/.config/stencil/config.toml when present. Every field has a working
// default so the file is optional.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Backend string      `toml:"backend"` // memory, file, redis, mongo
	Dir     string      `toml:"dir"`     // file backend
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig holds redis backend settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds mongodb backend settings.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// defaultConfig returns the configuration used when no config file exists.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8421"},
		Store:  StoreConfig{Backend: "file"},
	}
}

// loadConfig reads the config file, applying defaults for anything unset.
// A missing file is not an error - defaults are returned as-is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8421"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	return cfg, nil
}

// newStore creates the document store selected by the configuration.
func newStore(ctx context.Context, cfg StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file", "":
		dir := cfg.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(home, ".local", "share", appName, "documents")
		}
		return store.NewFileStore(dir)
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}
