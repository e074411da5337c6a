package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// 未调用 InitLog 时也可直接使用
var logger = log.New(os.Stdout)

// InitLog 初始化全局日志
// 输出到 os.Stdout，GoLand 控制台会把 stderr 显示为红色
func InitLog(appName string, logLevel string) {
	logger = newLogger(os.Stdout, appName)
	SetLevel(logLevel)
}

// InitLogTo 输出到指定 writer，测试用
func InitLogTo(w io.Writer, appName string, logLevel string) {
	logger = newLogger(w, appName)
	SetLevel(logLevel)
}

func newLogger(w io.Writer, appName string) *log.Logger {
	l := log.New(w)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	// 显示文件名和行号，跳过本包的一层封装
	l.SetReportCaller(true)
	l.SetCallerOffset(1)
	return l
}

// SetLevel 运行时调整级别，配置热更新时调用
func SetLevel(logLevel string) {
	logger.SetLevel(ParseLevel(logLevel))
}

// ParseLevel 未知级别按 info
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Info(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warn(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Error(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debug(format)
	} else {
		logger.Debugf(format, args...)
	}
}
