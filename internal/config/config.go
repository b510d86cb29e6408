// Package config provides configuration types and loading for mpa.
package config

import "time"

// Config is the root configuration struct.
// Top-level groups: Assistant, Store, Scheduler, Gateway, Effects.
type Config struct {
	Assistant AssistantConfig `json:"assistant"`
	Store     StoreConfig     `json:"store"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Gateway   GatewayConfig   `json:"gateway"`
	Effects   EffectsConfig   `json:"effects"`
}

// ---------------------------------------------------------------------------
// Assistant – conversation core
// ---------------------------------------------------------------------------

// AssistantConfig holds runtime settings for the conversation core. The
// persona itself (name, voice, language) lives in the settings store.
type AssistantConfig struct {
	// Timezone is the IANA zone reminder times are resolved in. Empty means
	// the host's local zone.
	Timezone string `json:"timezone" envconfig:"TIMEZONE"`
	// User is the identity the CLI claims when --user is not given.
	User string `json:"user" envconfig:"DEFAULT_USER"`
}

// ---------------------------------------------------------------------------
// Store – key-value settings persistence
// ---------------------------------------------------------------------------

// StoreConfig selects and configures the settings driver.
type StoreConfig struct {
	Driver        string `json:"driver" envconfig:"DRIVER"`
	Path          string `json:"path" envconfig:"DB_PATH"`
	RedisAddr     string `json:"redisAddr" envconfig:"REDIS_ADDR"`
	RedisPassword string `json:"redisPassword,omitempty" envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `json:"redisDb" envconfig:"REDIS_DB"`
	KeyPrefix     string `json:"keyPrefix" envconfig:"KEY_PREFIX"`
}

// ---------------------------------------------------------------------------
// Scheduler – reminder firing
// ---------------------------------------------------------------------------

// SchedulerConfig contains settings for the reminder scheduler.
type SchedulerConfig struct {
	Enabled      bool          `json:"enabled" envconfig:"ENABLED"`
	TickInterval time.Duration `json:"tickInterval" envconfig:"TICK_INTERVAL"`
}

// ---------------------------------------------------------------------------
// Gateway – HTTP server networking
// ---------------------------------------------------------------------------

// GatewayConfig contains gateway server settings.
type GatewayConfig struct {
	Host      string `json:"host" envconfig:"LISTEN_HOST"`
	Port      int    `json:"port" envconfig:"LISTEN_PORT"`
	AuthToken string `json:"authToken" envconfig:"AUTH_TOKEN"`
}

// ---------------------------------------------------------------------------
// Effects – turning actions into links and files
// ---------------------------------------------------------------------------

// EffectsConfig controls side-effect rendering.
type EffectsConfig struct {
	// QRDir receives a QR code PNG for every drafted WhatsApp link. Empty
	// disables QR output.
	QRDir string `json:"qrDir" envconfig:"QR_DIR"`
	// QRSize is the PNG edge length in pixels.
	QRSize int `json:"qrSize" envconfig:"QR_SIZE"`
}

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:    DriverSQLite,
			Path:      "~/" + ConfigDir + "/mpa.db",
			RedisAddr: "127.0.0.1:6379",
			KeyPrefix: "mpa:",
		},
		Scheduler: SchedulerConfig{
			Enabled:      true,
			TickInterval: time.Second,
		},
		Gateway: GatewayConfig{
			Host: "127.0.0.1", // Secure default
			Port: 18800,
		},
		Effects: EffectsConfig{
			QRSize: 512,
		},
	}
}
