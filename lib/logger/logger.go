package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var std = logrus.New()

func init() {
	std.SetOutput(os.Stderr)
	std.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	std.SetLevel(logrus.InfoLevel)
}

// SetLevel 按名称设置日志级别，无法识别的名称会被忽略并返回 false
func SetLevel(level string) bool {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		std.Warnf("unknown log level %q, keep %s", level, std.GetLevel())
		return false
	}
	std.SetLevel(lvl)
	return true
}

func Level() string {
	return std.GetLevel().String()
}

// WithField 返回带固定字段的日志入口，供各模块持有
func WithField(key string, value any) *logrus.Entry {
	return std.WithField(key, value)
}

func Debug(args ...any) {
	std.Debug(args...)
}

func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

func Info(args ...any) {
	std.Info(args...)
}

func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

func Warn(args ...any) {
	std.Warn(args...)
}

func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}

func Error(args ...any) {
	std.Error(args...)
}

func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}

func Fatal(args ...any) {
	std.Fatal(args...)
}
