package types

import "fmt"

// SharedCapability 双方协商一致并分配了偏移量的能力
//
// 只有两种实现：EthCapability 和 UnknownCapability。
// Offset 是该能力在会话消息 ID 空间中的起始 ID，
// 该能力占用 [Offset, Offset+NumMessages) 区间。
// 多个能力之间偏移量的单调性由调用方（握手组件）保证。
type SharedCapability interface {
	// Name 返回能力名称
	Name() string

	// Version 返回能力版本
	Version() uint8

	// Offset 返回消息 ID 偏移量
	Offset() uint8

	// NumMessages 返回该能力的消息数量
	//
	// 未知能力返回 ErrUnknownCapability。
	NumMessages() (uint8, error)

	// String 返回可读描述
	String() string

	sharedCapability()
}

// NewSharedCapability 根据名称、版本和偏移量创建 SharedCapability
//
// 名称为 eth 时版本必须是受支持的 eth 版本，否则返回
// ErrUnsupportedVersion。其他名称总是成功，原样保留版本。
func NewSharedCapability(name string, version, offset uint8) (SharedCapability, error) {
	if name != EthProtocolName {
		return NewUnknownCapability(name, version, offset), nil
	}

	v, err := EthVersionFromByte(version)
	if err != nil {
		return nil, &SharedCapabilityError{Kind: ErrUnsupportedVersion, Err: err}
	}
	return NewEthCapability(v, offset), nil
}

// ============================================================================
//                              EthCapability
// ============================================================================

// EthCapability 已校验版本的 eth 能力
type EthCapability struct {
	version EthVersion
	offset  uint8
}

var _ SharedCapability = EthCapability{}

// NewEthCapability 直接创建 eth 能力
func NewEthCapability(version EthVersion, offset uint8) EthCapability {
	return EthCapability{version: version, offset: offset}
}

func (EthCapability) sharedCapability() {}

// Name 返回 "eth"
func (c EthCapability) Name() string { return EthProtocolName }

// Version 返回版本号
func (c EthCapability) Version() uint8 { return uint8(c.version) }

// EthVersion 返回校验后的 eth 版本
func (c EthCapability) EthVersion() EthVersion { return c.version }

// Offset 返回偏移量
func (c EthCapability) Offset() uint8 { return c.offset }

// NumMessages 返回该 eth 版本的消息数量
func (c EthCapability) NumMessages() (uint8, error) {
	return c.version.TotalMessages(), nil
}

// String 返回可读描述
func (c EthCapability) String() string {
	return fmt.Sprintf("eth/%s@%d", c.version, c.offset)
}

// ============================================================================
//                              UnknownCapability
// ============================================================================

// UnknownCapability 本节点不理解的能力，版本未经校验
type UnknownCapability struct {
	name    string
	version uint8
	offset  uint8
}

var _ SharedCapability = UnknownCapability{}

// NewUnknownCapability 直接创建未知能力
func NewUnknownCapability(name string, version, offset uint8) UnknownCapability {
	return UnknownCapability{name: name, version: version, offset: offset}
}

func (UnknownCapability) sharedCapability() {}

// Name 返回能力名称
func (c UnknownCapability) Name() string { return c.name }

// Version 返回原始版本
func (c UnknownCapability) Version() uint8 { return c.version }

// Offset 返回偏移量
func (c UnknownCapability) Offset() uint8 { return c.offset }

// NumMessages 未知能力的消息数量无法确定
func (c UnknownCapability) NumMessages() (uint8, error) {
	return 0, &SharedCapabilityError{Kind: ErrUnknownCapability}
}

// String 返回可读描述
func (c UnknownCapability) String() string {
	return fmt.Sprintf("%s/%d@%d", c.name, c.version, c.offset)
}
