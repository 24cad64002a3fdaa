package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"wistia-clean/core/database"
	"wistia-clean/core/logger"
	"wistia-clean/core/reconcile"
	"wistia-clean/core/wistia"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrMissingCredential is returned when no Wistia API password could be resolved.
	ErrMissingCredential = errors.New("--wistia-api-password or --settings-path required")
	// ErrSettingsFile is returned when the settings file cannot be read or parsed.
	ErrSettingsFile = errors.New("invalid settings file")
)

// settingsPasswordKey is where the credential lives in the settings JSON.
const settingsPasswordKey = "wistia.apiPassword"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Mongo holds configuration for the bundle database.
	Mongo database.Config `mapstructure:"mongo"`
	// Wistia holds configuration for the Wistia API client.
	Wistia wistia.Config `mapstructure:"wistia"`
	// Reconcile holds the concurrency and pagination settings.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. MONGO_URI -> mongo.uri)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ApplySettingsFile reads the Wistia API password from a JSON settings file
// (key wistia.apiPassword) and uses it in place of any configured password.
func (c *Config) ApplySettingsFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", ErrSettingsFile, path, err)
	}

	raw := v.Get(settingsPasswordKey)
	if raw == nil {
		c.Wistia.APIPassword = ""
		return nil
	}
	password, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: %s in %s is not a string", ErrSettingsFile, settingsPasswordKey, path)
	}

	c.Wistia.APIPassword = password
	return nil
}

// Validate checks that the configuration is usable for a cleanup run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Wistia.APIPassword) == "" {
		return ErrMissingCredential
	}
	if c.Reconcile.Concurrency < 1 {
		return fmt.Errorf("reconcile concurrency must be at least 1, got %d", c.Reconcile.Concurrency)
	}
	if c.Reconcile.PageSize < 1 {
		return fmt.Errorf("reconcile page size must be at least 1, got %d", c.Reconcile.PageSize)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
