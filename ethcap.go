package ethcap

import (
	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
	"github.com/dep2p/go-ethcap/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-ethcap " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Capability 能力（名称 + 版本）
	Capability = types.Capability

	// Capabilities 有序能力列表
	Capabilities = types.Capabilities

	// EthVersion 受支持的 eth 版本
	EthVersion = types.EthVersion

	// SharedCapability 协商后的能力
	SharedCapability = types.SharedCapability

	// RawCapabilityMessage 原始能力消息
	RawCapabilityMessage = types.RawCapabilityMessage

	// CapabilityMessage eth 消息或其他能力消息
	CapabilityMessage = types.CapabilityMessage
)

// eth 版本
const (
	EthVersion66 = types.EthVersion66
	EthVersion67 = types.EthVersion67
)

// ════════════════════════════════════════════════════════════════════════════
//                              构造与编码
// ════════════════════════════════════════════════════════════════════════════

// NewCapability 创建能力
func NewCapability(name string, version uint) Capability {
	return types.NewCapability(name, version)
}

// NewCapabilities 创建能力列表
func NewCapabilities(caps ...Capability) *Capabilities {
	return types.NewCapabilities(caps)
}

// NewSharedCapability 解析共享能力
func NewSharedCapability(name string, version, offset uint8) (SharedCapability, error) {
	return types.NewSharedCapability(name, version, offset)
}

// EncodeCapabilities 编码能力列表
func EncodeCapabilities(caps *Capabilities) []byte {
	return capwire.EncodeCapabilities(caps)
}

// DecodeCapabilities 解码能力列表
func DecodeCapabilities(data []byte) (*Capabilities, error) {
	return capwire.DecodeCapabilities(data)
}
