package capwire

import "errors"

// 编解码错误
var (
	// ErrMalformed 输入不是合法编码
	ErrMalformed = errors.New("capwire: malformed input")

	// ErrTooManyCapabilities 能力数量超过 MaxCapabilities（CheckLimits）
	ErrTooManyCapabilities = errors.New("capwire: too many capabilities")

	// ErrNameTooLong 能力名称超过 MaxNameLength（CheckLimits）
	ErrNameTooLong = errors.New("capwire: capability name too long")

	// ErrMessageTooLarge 消息超过 MaxMessageSize
	ErrMessageTooLarge = errors.New("capwire: message too large")
)
