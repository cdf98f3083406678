// Package types 定义 go-ethcap 公共类型
//
// 本文件定义能力（Capability）相关类型。
package types

import (
	"encoding/json"
	"strconv"
)

// EthProtocolName eth 子协议名称
const EthProtocolName = "eth"

// ============================================================================
//                              Capability
// ============================================================================

// Capability 节点声明支持的子协议及其版本
//
// Capability 是值类型，可直接比较，也可用作 map 键。
type Capability struct {
	// Name 子协议名称
	Name string `json:"name"`

	// Version 子协议版本
	Version uint `json:"version"`
}

// NewCapability 创建 Capability
//
// 不校验版本范围，版本是否可用在协商阶段才判断。
func NewCapability(name string, version uint) Capability {
	return Capability{Name: name, Version: version}
}

// IsEth 是否为 eth 子协议（任意版本）
func (c Capability) IsEth() bool {
	return c.Name == EthProtocolName
}

// IsEthV66 是否为 eth/66
func (c Capability) IsEthV66() bool {
	return c.Name == EthProtocolName && c.Version == uint(EthVersion66)
}

// IsEthV67 是否为 eth/67
func (c Capability) IsEthV67() bool {
	return c.Name == EthProtocolName && c.Version == uint(EthVersion67)
}

// String 返回 name/version 形式
func (c Capability) String() string {
	return c.Name + "/" + strconv.FormatUint(uint64(c.Version), 10)
}

// ============================================================================
//                              Capabilities
// ============================================================================

// Capabilities 节点的全部能力
//
// 保留线上接收的顺序。eth66/eth67 标志在构造时一次性计算，之后只读。
type Capabilities struct {
	inner []Capability
	eth66 bool
	eth67 bool
}

// NewCapabilities 从能力列表创建 Capabilities
//
// 输入切片会被复制，调用方之后修改原切片不影响结果。
func NewCapabilities(caps []Capability) *Capabilities {
	inner := make([]Capability, len(caps))
	copy(inner, caps)

	c := &Capabilities{inner: inner}
	for _, item := range inner {
		if item.IsEthV66() {
			c.eth66 = true
		}
		if item.IsEthV67() {
			c.eth67 = true
		}
	}
	return c
}

// Capabilities 返回全部能力的副本
//
// 修改返回值不影响 Capabilities 本身，缓存标志始终与列表一致。
func (c *Capabilities) Capabilities() []Capability {
	return c.IntoInner()
}

// IntoInner 返回能力列表的副本
func (c *Capabilities) IntoInner() []Capability {
	out := make([]Capability, len(c.inner))
	copy(out, c.inner)
	return out
}

// Len 返回能力数量
func (c *Capabilities) Len() int {
	return len(c.inner)
}

// At 返回第 i 个能力
func (c *Capabilities) At(i int) Capability {
	return c.inner[i]
}

// Contains 是否包含指定能力
func (c *Capabilities) Contains(want Capability) bool {
	for _, have := range c.inner {
		if have == want {
			return true
		}
	}
	return false
}

// SupportsEth 是否支持 eth 子协议（66 或 67）
func (c *Capabilities) SupportsEth() bool {
	return c.eth67 || c.eth66
}

// SupportsEthV66 是否支持 eth/66
func (c *Capabilities) SupportsEthV66() bool {
	return c.eth66
}

// SupportsEthV67 是否支持 eth/67
func (c *Capabilities) SupportsEthV67() bool {
	return c.eth67
}

// Equal 比较两个 Capabilities（顺序敏感）
func (c *Capabilities) Equal(other *Capabilities) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.inner) != len(other.inner) {
		return false
	}
	for i := range c.inner {
		if c.inner[i] != other.inner[i] {
			return false
		}
	}
	return c.eth66 == other.eth66 && c.eth67 == other.eth67
}

// MarshalJSON 编码为能力数组
func (c *Capabilities) MarshalJSON() ([]byte, error) {
	if c.inner == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.inner)
}

// UnmarshalJSON 从能力数组解码，重新计算缓存标志
func (c *Capabilities) UnmarshalJSON(data []byte) error {
	var caps []Capability
	if err := json.Unmarshal(data, &caps); err != nil {
		return err
	}
	*c = *NewCapabilities(caps)
	return nil
}
