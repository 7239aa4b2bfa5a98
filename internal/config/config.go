package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configName = "bbs"
	configType = "toml"
	configDir  = ".config/lora-bbs"
	envPrefix  = "BBS"
)

const (
	LinkSerial = "serial"
	LinkTCP    = "tcp"
	LinkStdio  = "stdio"

	StorageTOML   = "toml"
	StorageSQLite = "sqlite"
	StorageBadger = "badger"
)

// Keys bound to command-line flags.
const (
	KeyLinkKind       = "link.kind"
	KeySerialPort     = "link.serial.port"
	KeySerialBaud     = "link.serial.baud"
	KeyTCPAddress     = "link.tcp.address"
	KeyStorageBackend = "storage.backend"
	KeyStorageDir     = "storage.dir"
	KeyLLMBaseURL     = "llm.base_url"
	KeyLogVerbose     = "log.verbose"
)

var ErrSerialPortRequired = errors.New("link.serial.port is required for serial links")

type Config struct {
	Link     LinkConfig     `mapstructure:"link"`
	Storage  StorageConfig  `mapstructure:"storage"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Web      WebConfig      `mapstructure:"web"`
	Timeouts TimeoutsConfig `mapstructure:"timeouts"`
	Credits  string         `mapstructure:"credits"`
	Log      LogConfig      `mapstructure:"log"`
}

type LinkConfig struct {
	Kind   string       `mapstructure:"kind" validate:"required,oneof=serial tcp stdio"`
	Serial SerialConfig `mapstructure:"serial"`
	TCP    TCPConfig    `mapstructure:"tcp"`
}

type SerialConfig struct {
	Port string `mapstructure:"port"`
	Baud int    `mapstructure:"baud" validate:"gt=0"`
}

type TCPConfig struct {
	Address string `mapstructure:"address" validate:"required,hostname_port"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=toml sqlite badger"`
	Dir     string `mapstructure:"dir" validate:"required"`
}

type LLMConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxTokens int           `mapstructure:"max_tokens" validate:"gt=0"`
}

type WebConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type TimeoutsConfig struct {
	Name        time.Duration `mapstructure:"name" validate:"gt=0"`
	Lookup      time.Duration `mapstructure:"lookup" validate:"gt=0"`
	ModelSelect time.Duration `mapstructure:"model_select" validate:"gt=0"`
	Prompt      time.Duration `mapstructure:"prompt" validate:"gt=0"`
}

type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

var validate = validator.New()

// SetDefaults registers every key so environment variables resolve even
// without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLinkKind, LinkSerial)
	v.SetDefault(KeySerialPort, "/dev/ttyACM0")
	v.SetDefault(KeySerialBaud, 115200)
	v.SetDefault(KeyTCPAddress, "127.0.0.1:7373")
	v.SetDefault(KeyStorageBackend, StorageTOML)
	v.SetDefault(KeyStorageDir, ".")
	v.SetDefault(KeyLLMBaseURL, "127.0.0.1:1234")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout", 180*time.Second)
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("web.timeout", 10*time.Second)
	v.SetDefault("timeouts.name", 30*time.Second)
	v.SetDefault("timeouts.lookup", 30*time.Second)
	v.SetDefault("timeouts.model_select", 40*time.Second)
	v.SetDefault("timeouts.prompt", 120*time.Second)
	v.SetDefault("credits", "")
	v.SetDefault(KeyLogVerbose, false)
}

// Load reads bbs.toml from the user config dir or the working directory,
// overlays BBS_* environment variables and validates the result. A missing
// config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if c.Link.Kind == LinkSerial && strings.TrimSpace(c.Link.Serial.Port) == "" {
		return ErrSerialPortRequired
	}
	return nil
}
