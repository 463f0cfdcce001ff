// Package config provides configuration management for the NRQL chart fetcher.
// It handles loading and validating credentials from a local JSON file, with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigPath is used when no config path argument is given.
const DefaultConfigPath = "config.json"

// configShapeHint is printed alongside configuration errors so the user can
// create a valid file without consulting the docs.
const configShapeHint = `{"api_key": "YOUR_API_KEY_HERE", "account_id": YOUR_ACCOUNT_ID}`

// Environment variables that override the config file values.
const (
	EnvAPIKey    = "NEW_RELIC_API_KEY"
	EnvAccountID = "NEW_RELIC_ACCOUNT_ID"
)

// SettingsError represents an error specifically related to settings loading.
type SettingsError struct {
	Msg string
	Err error // Wrapped error
}

func (e *SettingsError) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return fmt.Sprintf("%s: %v", e.Msg, e.Err)
		}
		return fmt.Sprintf("%v", e.Err)
	}
	return e.Msg
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// Settings holds the credentials for the New Relic account being queried.
type Settings struct {
	APIKey    string
	AccountID int
}

// LoadSettings reads credentials from the JSON config file at path, honoring
// NEW_RELIC_API_KEY / NEW_RELIC_ACCOUNT_ID environment overrides. A .env file
// in the working directory is loaded first if present.
//
// A missing config file is fatal unless both environment overrides are set.
// Missing keys produce a SettingsError; no network activity happens here.
func LoadSettings(path string) (*Settings, error) {
	// Best effort; absence of .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	if err := v.BindEnv("api_key", EnvAPIKey); err != nil {
		return nil, &SettingsError{Msg: "could not bind api_key environment variable", Err: err}
	}
	if err := v.BindEnv("account_id", EnvAccountID); err != nil {
		return nil, &SettingsError{Msg: "could not bind account_id environment variable", Err: err}
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, &SettingsError{Msg: fmt.Sprintf("could not read config file '%s'", path), Err: err}
		}
		// The file may legitimately be absent when both overrides are set.
		if !v.IsSet("api_key") || !v.IsSet("account_id") {
			return nil, &SettingsError{
				Msg: fmt.Sprintf("config file '%s' not found.\nCreate it with the following shape:\n  %s", path, configShapeHint),
			}
		}
	} else {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, &SettingsError{Msg: fmt.Sprintf("could not parse config file '%s'", path), Err: err}
		}
	}

	if !v.IsSet("api_key") {
		return nil, &SettingsError{
			Msg: fmt.Sprintf("config file '%s' does not contain 'api_key'.\nExpected shape:\n  %s", path, configShapeHint),
		}
	}
	if !v.IsSet("account_id") {
		return nil, &SettingsError{
			Msg: fmt.Sprintf("config file '%s' does not contain 'account_id'.\nExpected shape:\n  %s", path, configShapeHint),
		}
	}

	return &Settings{
		APIKey:    v.GetString("api_key"),
		AccountID: v.GetInt("account_id"),
	}, nil
}

// ValidateSettings checks that loaded settings are usable for API calls.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return &SettingsError{Msg: "settings cannot be nil"}
	}
	if settings.APIKey == "" {
		return &SettingsError{Msg: "API key cannot be empty"}
	}
	if settings.AccountID <= 0 {
		return &SettingsError{Msg: "account ID must be a positive number"}
	}
	return nil
}
