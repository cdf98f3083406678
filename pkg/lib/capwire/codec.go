package capwire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dep2p/go-ethcap/pkg/types"
)

// 字段编号
const (
	fieldCapabilities protowire.Number = 1

	fieldName    protowire.Number = 1
	fieldVersion protowire.Number = 2
)

// ============================================================================
//                              编码
// ============================================================================

// EncodeCapabilities 编码能力列表
func EncodeCapabilities(caps *types.Capabilities) []byte {
	return AppendCapabilities(nil, caps)
}

// AppendCapabilities 将能力列表编码后追加到 b
func AppendCapabilities(b []byte, caps *types.Capabilities) []byte {
	if caps == nil {
		return b
	}
	for i := 0; i < caps.Len(); i++ {
		c := caps.At(i)
		b = protowire.AppendTag(b, fieldCapabilities, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(capabilitySize(c)))
		b = appendCapability(b, c)
	}
	return b
}

// appendCapability 编码单个能力（不含外层 tag 和长度）
func appendCapability(b []byte, c types.Capability) []byte {
	if c.Name != "" {
		b = protowire.AppendTag(b, fieldName, protowire.BytesType)
		b = protowire.AppendString(b, c.Name)
	}
	if c.Version != 0 {
		b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(c.Version))
	}
	return b
}

// capabilitySize 返回单个能力的编码长度
func capabilitySize(c types.Capability) int {
	n := 0
	if c.Name != "" {
		n += protowire.SizeTag(fieldName) + protowire.SizeBytes(len(c.Name))
	}
	if c.Version != 0 {
		n += protowire.SizeTag(fieldVersion) + protowire.SizeVarint(uint64(c.Version))
	}
	return n
}

// ============================================================================
//                              解码
// ============================================================================

// DecodeCapabilities 解码能力列表
//
// 顺序与线上一致，eth 版本标志由解码结果重新计算。
// 解码不做数量和名称长度限制，EncodeCapabilities 的任何输出都能还原；
// 解析不可信的对端声明时用 CheckLimits 检查。
func DecodeCapabilities(data []byte) (*types.Capabilities, error) {
	var caps []types.Capability

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, malformed(n)
		}
		data = data[n:]

		if num != fieldCapabilities || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, malformed(n)
			}
			data = data[n:]
			continue
		}

		body, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, malformed(n)
		}
		data = data[n:]

		c, err := decodeCapability(body)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}

	return types.NewCapabilities(caps), nil
}

// decodeCapability 解码单个能力
func decodeCapability(data []byte) (types.Capability, error) {
	var c types.Capability

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return c, malformed(n)
		}
		data = data[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return c, malformed(n)
			}
			c.Name = string(v)
			data = data[n:]

		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return c, malformed(n)
			}
			if v > uint64(^uint(0)) {
				return c, fmt.Errorf("%w: capability version %d out of range", ErrMalformed, v)
			}
			c.Version = uint(v)
			data = data[n:]

		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return c, malformed(n)
			}
			data = data[n:]
		}
	}

	return c, nil
}

// malformed 将 protowire 的负长度转换为错误
func malformed(n int) error {
	return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
}
