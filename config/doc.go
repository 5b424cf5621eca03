// Package config provides configuration loading and validation for commons
// applications.
//
// LoadConfig reads a YAML file with Viper, loads an optional .env file with
// godotenv, overlays environment variables, and unmarshals the result into a
// struct using mapstructure tags. Validate checks `validate` struct tags with
// go-playground/validator and reports failures as INVALID_INPUT errors.
//
// # Usage
//
//	var cfg struct {
//	    config.ServiceConfig `mapstructure:",squash"`
//	    Fold pipeline.FoldConfig `mapstructure:"fold"`
//	}
//	err := config.LoadConfig("reporter", &cfg, config.WithEnvPrefix("REPORTER"))
//
// With the prefix REPORTER, REPORTER_FOLD_PARALLELISM=8 sets fold.parallelism.
package config
