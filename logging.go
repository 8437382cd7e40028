package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogging is a helper function that initialize the logging module.
// In production all logs are saved to the defined file. In development
// the same logs are printed to standard error as well, which keeps the
// rendered catalog on standard output clean. It only adds stacktrace to
// error level logs. All logs come with commit & tag value. The clock
// provides UTC timestamps in production and Local ones in development.
func SetupLogging(config *Config, logFile io.Writer, clock zapcore.Clock) (*zap.Logger, func() error) {
	zapConfig := zap.NewProductionEncoderConfig()
	if !config.IsProduction {
		zapConfig = zap.NewDevelopmentEncoderConfig()
	}
	zapConfig.TimeKey = "ts"
	zapConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.LevelKey = "lvl"
	zapConfig.NameKey = "name"
	zapConfig.MessageKey = "msg"
	zapConfig.CallerKey = "caller"
	zapConfig.StacktraceKey = "skt"

	fileEncoder := zapcore.NewJSONEncoder(zapConfig)
	cores := []zapcore.Core{zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), config.LogLevel)}
	if !config.IsProduction {
		consoleEncoder := zapcore.NewConsoleEncoder(zapConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), config.LogLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel), zap.WithClock(clock))
	logger = logger.With(zap.String("app.commit", config.GitCommit), zap.String("app.tag", config.GitTag), zap.String("app.built", config.BuildTime))

	flusher := func() error {
		if err := logger.Sync(); err != nil {
			return fmt.Errorf("[flush logs]: %w", err)
		}
		return nil
	}

	return logger, flusher
}
