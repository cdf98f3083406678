package capwire

import (
	"fmt"

	"github.com/dep2p/go-ethcap/pkg/types"
)

const (
	// MaxCapabilities 对端声明允许的最大能力数量
	MaxCapabilities = 256

	// MaxNameLength 对端声明中能力名称的最大长度（字节）
	MaxNameLength = 32
)

// CheckLimits 检查能力列表是否在数量和名称长度限制内
//
// 编解码本身不做限制，这里是接收对端声明时的策略检查。
func CheckLimits(caps *types.Capabilities) error {
	if caps == nil {
		return nil
	}
	if caps.Len() > MaxCapabilities {
		return fmt.Errorf("%w: %d > %d", ErrTooManyCapabilities, caps.Len(), MaxCapabilities)
	}
	for i := 0; i < caps.Len(); i++ {
		if c := caps.At(i); len(c.Name) > MaxNameLength {
			return fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(c.Name))
		}
	}
	return nil
}
