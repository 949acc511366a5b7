package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI logger. Logs go to stderr unless a log file is
// set by flag or config, in which case they are JSON lines in a rotating
// file. verbose forces debug level.
func newLogger(logFile string, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	} else if s := strings.TrimSpace(viper.GetString(logLevelKey)); s != "" {
		parsed, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if strings.TrimSpace(logFile) == "" {
		logFile = viper.GetString(logFilenameKey)
	}

	var core zapcore.Core
	if strings.TrimSpace(logFile) == "" {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	} else {
		w := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
		core = zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), level)
	}

	return zap.New(core), nil
}
