package ethcap

import (
	"errors"
	"fmt"

	"go.uber.org/fx"

	"github.com/dep2p/go-ethcap/config"
	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// config 统一配置
	config *config.Config

	// fxEventLog 是否输出 Fx 事件日志
	fxEventLog bool

	// userFxOptions 用户追加的 Fx 选项
	userFxOptions []fx.Option
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{config: config.NewConfig()}
}

// WithConfig 使用完整配置
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config is nil")
		}
		o.config = cfg
		return nil
	}
}

// WithConfigJSON 从 JSON 加载配置
func WithConfigJSON(data []byte) Option {
	return func(o *options) error {
		cfg, err := config.FromJSON(data)
		if err != nil {
			return err
		}
		o.config = cfg
		return nil
	}
}

// WithLocalCapabilities 设置本地声明的能力
func WithLocalCapabilities(caps ...Capability) Option {
	return func(o *options) error {
		if len(caps) == 0 {
			return errors.New("no local capabilities")
		}
		entries := make([]config.CapabilityEntry, 0, len(caps))
		for _, c := range caps {
			entries = append(entries, config.CapabilityEntry{Name: c.Name, Version: c.Version})
		}
		o.config.Capability = o.config.Capability.WithLocal(entries...)
		return nil
	}
}

// WithMaxRemoteCapabilities 设置对端能力数量上限
func WithMaxRemoteCapabilities(n int) Option {
	return func(o *options) error {
		if n <= 0 || n > capwire.MaxCapabilities {
			return fmt.Errorf("invalid max remote capabilities: %d", n)
		}
		o.config.Capability = o.config.Capability.WithMaxRemoteCapabilities(n)
		return nil
	}
}

// WithLogLevel 设置默认日志级别
func WithLogLevel(level string) Option {
	return func(o *options) error {
		o.config.Log.Level = level
		return o.config.Log.Validate()
	}
}

// WithFxEventLog 输出 Fx 事件日志（调试依赖注入时使用）
func WithFxEventLog(enable bool) Option {
	return func(o *options) error {
		o.fxEventLog = enable
		return nil
	}
}

// WithFxOption 追加 Fx 选项
func WithFxOption(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
