// Package config registers every configuration key with viper.
// Values come from, in order of precedence, flags, STREAMKIT_ environment variables, streamkit.toml and the defaults in Default.
package config

import (
	"errors"
	"strings"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps a key to its environment variable suffix.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds defaults and environment variables, then reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Streamkit)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Streamkit)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}

	viper.SetTypeByDefaultValue(true)
	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return nil
	}
	return err
}
