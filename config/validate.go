package config

import (
	"errors"
	"fmt"
)

// ValidateAll 验证整个配置的有效性
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并修复可修复的问题
//
//   - 本地能力为空 -> 使用默认能力
//   - 对端能力上限非正 -> 使用默认上限
//   - 日志级别为空 -> 使用默认值
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	defaults := NewConfig()
	if len(c.Capability.Local) == 0 {
		c.Capability.Local = defaults.Capability.Local
	}
	if c.Capability.MaxRemoteCapabilities <= 0 {
		c.Capability.MaxRemoteCapabilities = defaults.Capability.MaxRemoteCapabilities
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed after fixes: %w", err)
	}
	return c, nil
}

// MustValidate 验证配置，失败时 panic
//
// 仅用于初始化阶段或测试代码。
func MustValidate(c *Config) {
	if err := ValidateAll(c); err != nil {
		panic(fmt.Sprintf("config validation failed: %v", err))
	}
}
