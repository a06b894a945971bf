// Package config provides YAML-based configuration loading for t2048,
// with environment variable overrides.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Keys    KeysConfig    `yaml:"keys"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig controls game creation.
type GameConfig struct {
	Seed int64 `yaml:"seed" env:"T2048_SEED"` // 0 = time-based seed
}

// StorageConfig locates the high-score database.
type StorageConfig struct {
	Path string `yaml:"path" env:"T2048_DB"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `yaml:"level" env:"T2048_LOG_LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" env:"T2048_LOG_FILE"`   // Used by interactive play
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key notation.
type KeysConfig struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Pause      []string `yaml:"pause"`
	Restart    []string `yaml:"restart"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"T2048_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key" env:"T2048_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"T2048_IDLE_TIMEOUT"`
}

// Bindings returns the key lists by action name, in a stable order.
func (k KeysConfig) Bindings() []NamedKeys {
	return []NamedKeys{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"quit", k.Quit},
		{"screenshot", k.Screenshot},
	}
}

// NamedKeys pairs an action name with its keys.
type NamedKeys struct {
	Action string
	Keys   []string
}
