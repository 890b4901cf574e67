// Package config loads credentials from the environment through viper.
// No package in this module imports it; the root package's own
// environment reader is ftx.OptionsFromEnv.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/shopspring-labs/ftx"
)

// Load builds ftx.Options from API_KEY, API_SECRET, SUBACCOUNT and
// ENDPOINT environment variables (ENDPOINT is "com" or "us", default
// "com"). It is a thin viper binding over the environment; there is no
// config file for the example programs.
func Load() (ftx.Options, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("endpoint", "com")

	key := v.GetString("api_key")
	secret := v.GetString("api_secret")
	if key == "" || secret == "" {
		return ftx.Options{}, fmt.Errorf("config: API_KEY and API_SECRET must be set")
	}

	opts := ftx.Default().WithCredentials(key, secret).WithSubaccount(v.GetString("subaccount"))
	if strings.EqualFold(v.GetString("endpoint"), "us") {
		opts.Endpoint = ftx.Us
	}
	return opts, nil
}
