package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 3
)

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
//
// LOG_LEVEL sets the level, JSON_LOG switches to the json encoder and LOG_FILE
// additionally writes to a rotated file.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		level := zap.InfoLevel
		levelEnv := os.Getenv("LOG_LEVEL")
		if levelEnv != "" {
			levelFromEnv, err := zapcore.ParseLevel(levelEnv)
			if err != nil {
				log.Println(
					fmt.Errorf("invalid level, defaulting to INFO: %w", err),
				)
			} else {
				level = levelFromEnv
			}
		}

		logLevel := zap.NewAtomicLevelAt(level)

		productionCfg := zap.NewProductionEncoderConfig()
		productionCfg.TimeKey = "timestamp"
		productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		developmentCfg := zap.NewDevelopmentEncoderConfig()
		developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

		encoder := zapcore.NewConsoleEncoder(developmentCfg)
		isJSON := os.Getenv("JSON_LOG")
		if isJSON != "" {
			encoder = zapcore.NewJSONEncoder(productionCfg)
		}

		cores := []zapcore.Core{
			zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), logLevel),
		}

		if path := os.Getenv("LOG_FILE"); path != "" {
			// file output is always json so it can be shipped as-is
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(productionCfg),
				zapcore.AddSync(fileWriter(path)),
				logLevel,
			))
		}

		core := zapcore.NewTee(cores...)

		buildInfo, ok := debug.ReadBuildInfo()
		if ok {
			var fields []zapcore.Field
			fields = append(fields, zap.String("go_version", buildInfo.GoVersion))
			for _, v := range buildInfo.Settings {
				if v.Key == "vcs.revision" && len(v.Value) >= 7 {
					fields = append(fields, zap.String("git_revision", v.Value[0:7]))
					break
				}
			}

			core = core.With(fields)
		}

		logger = zap.New(core).Sugar()
	})

	return logger
}

func fileWriter(path string) *lumberjack.Logger {
	maxSize := defaultMaxSizeMB
	if v, err := strconv.Atoi(os.Getenv("LOG_FILE_MAX_SIZE_MB")); err == nil && v > 0 {
		maxSize = v
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: defaultMaxBackups,
		Compress:   true,
	}
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned, unless it is nil
// in which case a disabled logger is returned.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return withFields(l, with)
	} else if l := logger; l != nil {
		return withFields(l, with)
	}

	return withFields(Get(), with)
}

func withFields(l *zap.SugaredLogger, with []any) *zap.SugaredLogger {
	if len(with) == 0 {
		return l
	}
	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
