package capability

import (
	"fmt"

	"github.com/dep2p/go-ethcap/config"
	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
	"github.com/dep2p/go-ethcap/pkg/types"
)

// Config 能力模块配置
type Config struct {
	// Local 本地支持的能力（声明顺序）
	Local []types.Capability

	// MaxRemoteCapabilities 对端声明的能力数量上限
	MaxRemoteCapabilities int
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Local: []types.Capability{
			types.NewCapability(types.EthProtocolName, uint(types.EthVersion66)),
			types.NewCapability(types.EthProtocolName, uint(types.EthVersion67)),
		},
		MaxRemoteCapabilities: capwire.MaxCapabilities,
	}
}

// Validate 验证配置
func (c Config) Validate() error {
	if len(c.Local) == 0 {
		return ErrNoLocalCapabilities
	}
	if c.MaxRemoteCapabilities <= 0 || c.MaxRemoteCapabilities > capwire.MaxCapabilities {
		return fmt.Errorf("%w: max remote capabilities %d not in (0, %d]",
			ErrInvalidConfig, c.MaxRemoteCapabilities, capwire.MaxCapabilities)
	}
	return nil
}

// WithLocal 设置本地能力
func (c Config) WithLocal(caps ...types.Capability) Config {
	c.Local = append([]types.Capability(nil), caps...)
	return c
}

// WithMaxRemoteCapabilities 设置对端能力数量上限
func (c Config) WithMaxRemoteCapabilities(n int) Config {
	c.MaxRemoteCapabilities = n
	return c
}

// ConfigFromUnified 从统一配置创建能力配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}

	local := make([]types.Capability, 0, len(cfg.Capability.Local))
	for _, e := range cfg.Capability.Local {
		local = append(local, types.NewCapability(e.Name, e.Version))
	}
	return Config{
		Local:                 local,
		MaxRemoteCapabilities: cfg.Capability.MaxRemoteCapabilities,
	}
}
