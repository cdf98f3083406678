package types

// RawCapabilityMessage 能力消息：消息 ID 加原始负载
//
// ID 是线上看到的完整 ID（已包含偏移量）。负载不做解析，
// 交给子协议解码器前归本结构独占。
type RawCapabilityMessage struct {
	// ID 消息 ID
	ID uint64 `json:"id"`

	// Payload 原始负载
	Payload []byte `json:"payload"`
}

// EthMessage eth 子协议消息
//
// ID 是减去 eth 偏移量之后的相对 ID，负载仍为原始字节。
type EthMessage struct {
	// Version 协商得到的 eth 版本
	Version EthVersion `json:"version"`

	// ID 相对消息 ID
	ID uint8 `json:"id"`

	// Payload 原始负载
	Payload []byte `json:"payload"`
}

// CapabilityMessage 会话上送的能力消息
//
// 只有两种实现：*EthMessage 和 *RawCapabilityMessage（其他能力）。
type CapabilityMessage interface {
	capabilityMessage()
}

func (*EthMessage) capabilityMessage()           {}
func (*RawCapabilityMessage) capabilityMessage() {}

var (
	_ CapabilityMessage = (*EthMessage)(nil)
	_ CapabilityMessage = (*RawCapabilityMessage)(nil)
)

// IsEthMessage 是否为 eth 消息
func IsEthMessage(msg CapabilityMessage) bool {
	_, ok := msg.(*EthMessage)
	return ok
}
