package config

import "fmt"

// LogConfig 日志配置
type LogConfig struct {
	// Level 默认日志级别: debug, info, warn, error
	//
	// 设置了 ETHCAP_LOG_LEVEL 时以环境变量为准。
	Level string `json:"level"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level: "info",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: invalid level %q", c.Level)
	}
	return nil
}
