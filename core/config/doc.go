// Package config provides configuration management for wistia-clean.
//
// It utilizes Viper for loading configuration from environment variables (and
// an optional .env file), with defaults declared on the struct fields through
// `default:` tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Mongo: bundle database connection string, collection and timeout
//   - Wistia: API base URL, API password and request timeout
//   - Reconcile: concurrency, page size and project de-duplication
//   - Log: logging level and format
//
// # Credentials
//
// The Wistia API password comes from WISTIA_API_PASSWORD, the
// --wistia-api-password flag, or a JSON settings file (--settings-path) holding
// it under wistia.apiPassword. The settings file wins when given. Validate
// reports ErrMissingCredential when none of them produced a password.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplySettingsFile("settings.json"); err != nil {
//	    return err
//	}
//	err = cfg.Validate()
package config
