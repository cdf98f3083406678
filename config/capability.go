package config

import (
	"errors"
	"fmt"

	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
)

// CapabilityConfig 能力配置
//
// 本节点支持哪些能力由配置决定，默认声明 eth/66 和 eth/67。
type CapabilityConfig struct {
	// Local 本地声明的能力，按声明顺序编码到线上
	Local []CapabilityEntry `json:"local"`

	// MaxRemoteCapabilities 对端声明中允许的最大能力数量
	MaxRemoteCapabilities int `json:"max_remote_capabilities"`
}

// CapabilityEntry 单个能力声明
type CapabilityEntry struct {
	// Name 子协议名称
	Name string `json:"name"`

	// Version 子协议版本
	Version uint `json:"version"`
}

// DefaultCapabilityConfig 返回默认能力配置
func DefaultCapabilityConfig() CapabilityConfig {
	return CapabilityConfig{
		Local: []CapabilityEntry{
			{Name: "eth", Version: 66},
			{Name: "eth", Version: 67},
		},
		MaxRemoteCapabilities: capwire.MaxCapabilities,
	}
}

// Validate 验证能力配置
func (c CapabilityConfig) Validate() error {
	if len(c.Local) == 0 {
		return errors.New("capability: no local capabilities")
	}
	if c.MaxRemoteCapabilities <= 0 || c.MaxRemoteCapabilities > capwire.MaxCapabilities {
		return fmt.Errorf("capability: max remote capabilities %d not in (0, %d]",
			c.MaxRemoteCapabilities, capwire.MaxCapabilities)
	}

	seen := make(map[CapabilityEntry]struct{}, len(c.Local))
	for _, e := range c.Local {
		if e.Name == "" {
			return errors.New("capability: empty capability name")
		}
		if len(e.Name) > capwire.MaxNameLength {
			return fmt.Errorf("capability: name %q too long", e.Name)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("capability: duplicate %s/%d", e.Name, e.Version)
		}
		seen[e] = struct{}{}
	}
	return nil
}

// WithLocal 设置本地能力
func (c CapabilityConfig) WithLocal(entries ...CapabilityEntry) CapabilityConfig {
	c.Local = append([]CapabilityEntry(nil), entries...)
	return c
}

// WithMaxRemoteCapabilities 设置对端能力数量上限
func (c CapabilityConfig) WithMaxRemoteCapabilities(n int) CapabilityConfig {
	c.MaxRemoteCapabilities = n
	return c
}
