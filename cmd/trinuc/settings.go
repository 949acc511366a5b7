package main

import (
	"strings"

	"github.com/spf13/viper"
)

// Config keys.
const (
	outputFormatKey = "output.format"
	cachePathKey    = "cache.path"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"
)

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

func setDefaults() {
	viper.SetDefault(outputFormatKey, "tab")
	viper.SetDefault(cachePathKey, "")

	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, "warn")
	viper.SetDefault(logMaxSizeKey, 10)
	viper.SetDefault(logMaxBackupsKey, 3)
	viper.SetDefault(logMaxAgeKey, 28)
	viper.SetDefault(logCompressKey, true)
}
