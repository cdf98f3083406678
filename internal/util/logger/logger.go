// Package logger 提供 go-ethcap 的统一日志系统
//
// 基于标准库 log/slog，支持按子系统配置日志级别：
//
//	var logger = logger.Logger("core/capability")
//
//	logger.Debug("解析对端能力", "count", caps.Len())
//
// 环境变量配置:
//
//	# 所有模块 info，core/capability 模块 debug
//	ETHCAP_LOG_LEVEL=core/capability=debug,info
//
//	# 使用 JSON 格式输出
//	ETHCAP_LOG_FORMAT=json
package logger

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

var (
	// loggers 缓存各子系统的 Logger
	loggers sync.Map // map[string]*slog.Logger

	// levels 各子系统的动态级别
	levels sync.Map // map[string]*slog.LevelVar
)

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用返回相同实例。
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}

	cfg := ConfigFromEnv()
	level := new(slog.LevelVar)
	level.Set(cfg.LevelForSubsystem(subsystem))

	actualLevel, _ := levels.LoadOrStore(subsystem, level)
	l := slog.New(newHandler(subsystem, actualLevel.(*slog.LevelVar), cfg.Format))

	actual, _ := loggers.LoadOrStore(subsystem, l)
	return actual.(*slog.Logger)
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	v, _ := levels.LoadOrStore(subsystem, new(slog.LevelVar))
	v.(*slog.LevelVar).Set(level)
}

// SetGlobalLevel 设置所有已创建子系统的日志级别
func SetGlobalLevel(level slog.Level) {
	levels.Range(func(_, value any) bool {
		value.(*slog.LevelVar).Set(level)
		return true
	})
}

// SetOutput 设置全局日志输出目标，已创建的 Logger 同样生效
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}

// Discard 返回丢弃所有日志的 Logger（用于测试）
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// discardHandler 丢弃所有日志的 Handler
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
