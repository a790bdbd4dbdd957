package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/magic-sketchbook/backend/common/helper"
)

const (
	loggerDebug = "DEBUG"
	loggerInfo  = "INFO"
	loggerWarn  = "WARN"
	loggerError = "ERROR"
)

var setupLogOnce sync.Once

var debugEnabled = os.Getenv("DEBUG") == "true"

func SetupLogger() {
	setupLogOnce.Do(func() {
		logDir := os.Getenv("LOG_DIR")
		if logDir == "" {
			return
		}
		fd, err := os.OpenFile(
			logDir+string(os.PathSeparator)+"sketchbook.log",
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644,
		)
		if err != nil {
			log.Fatal("failed to open log file")
		}
		log.SetOutput(io.MultiWriter(os.Stderr, fd))
	})
}

func SysLog(s string) {
	log.Printf("[SYS] | %s \n", s)
}

func SysLogf(format string, a ...any) {
	SysLog(fmt.Sprintf(format, a...))
}

func SysError(s string) {
	log.Printf("[SYS] | %s \n", s)
}

func FatalLog(s string) {
	log.Printf("[FATAL] | %s \n", s)
	os.Exit(1)
}

func SysErrorf(format string, a ...any) {
	SysError(fmt.Sprintf(format, a...))
}

func Debug(ctx context.Context, msg string) {
	if debugEnabled {
		logHelper(ctx, loggerDebug, msg)
	}
}

func Info(ctx context.Context, msg string) {
	logHelper(ctx, loggerInfo, msg)
}

func Warn(ctx context.Context, msg string) {
	logHelper(ctx, loggerWarn, msg)
}

func Error(ctx context.Context, msg string) {
	logHelper(ctx, loggerError, msg)
}

func Debugf(ctx context.Context, format string, a ...any) {
	Debug(ctx, fmt.Sprintf(format, a...))
}

func Infof(ctx context.Context, format string, a ...any) {
	Info(ctx, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	Warn(ctx, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	Error(ctx, fmt.Sprintf(format, a...))
}

func logHelper(ctx context.Context, level string, msg string) {
	id, ok := ctx.Value(helper.RequestIdKey).(string)
	if !ok {
		id = "unknown"
	}
	log.Printf("[%s] | %s | %s \n", level, id, msg)
}
