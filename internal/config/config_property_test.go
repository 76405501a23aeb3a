// Package config provides property-based tests for configuration handling.
// Property: for any valid Configuration object, serializing it and then
// deserializing should produce an equal object.
package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestConfigRoundTripProperty tests deserialize(serialize(config)) == config.
func TestConfigRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("config round-trip preserves data", prop.ForAll(
		func(config *Config) bool {
			yamlBytes, err := config.Serialize()
			if err != nil {
				return false
			}

			parsed, err := ParseConfig(yamlBytes)
			if err != nil {
				return false
			}

			return *config == *parsed
		},
		genConfig(),
	))

	properties.Property("generated config is valid", prop.ForAll(
		func(config *Config) bool {
			return config.Validate() == nil
		},
		genConfig(),
	))

	properties.Property("clone equals original", prop.ForAll(
		func(config *Config) bool {
			return *config.Clone() == *config
		},
		genConfig(),
	))

	properties.TestingRun(t)
}

// genConfig generates a complete configuration.
func genConfig() gopter.Gen {
	return gopter.CombineGens(
		genREPLConfig(),
		genServerConfig(),
		genLoggingConfig(),
	).Map(func(values []interface{}) *Config {
		return &Config{
			REPL:    values[0].(REPLConfig),
			Server:  values[1].(ServerConfig),
			Logging: values[2].(LoggingConfig),
		}
	})
}

func genREPLConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(PromptAlways, PromptNever, PromptAuto),
		gen.AlphaString(),
	).Map(func(values []interface{}) REPLConfig {
		return REPLConfig{
			PromptMode: values[0].(string),
			Prompt:     values[1].(string) + ">>",
		}
	})
}

func genServerConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(1024, 65535),
		gen.IntRange(1, 60),
		gen.IntRange(1, 60),
		gen.Bool(),
		gen.IntRange(0, 1<<20),
	).Map(func(values []interface{}) ServerConfig {
		return ServerConfig{
			Address:      fmt.Sprintf(":%d", values[0].(int)),
			ReadTimeout:  time.Duration(values[1].(int)) * time.Second,
			WriteTimeout: time.Duration(values[2].(int)) * time.Second,
			EnableCORS:   values[3].(bool),
			BodyLimit:    values[4].(int),
		}
	})
}

func genLoggingConfig() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("debug", "info", "warn", "error"),
		gen.OneConstOf("json", "console"),
		gen.OneConstOf("stdout", "stderr"),
		gen.IntRange(0, 500),
		gen.IntRange(0, 10),
		gen.IntRange(0, 30),
	).Map(func(values []interface{}) LoggingConfig {
		return LoggingConfig{
			Level:      values[0].(string),
			Format:     values[1].(string),
			Output:     values[2].(string),
			MaxSize:    values[3].(int),
			MaxBackups: values[4].(int),
			MaxAge:     values[5].(int),
		}
	})
}
