package capability

import "errors"

// 能力模块错误定义
var (
	// ErrNoLocalCapabilities 未配置本地能力
	ErrNoLocalCapabilities = errors.New("capability: no local capabilities")

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = errors.New("capability: invalid config")

	// ErrTooManyRemoteCapabilities 对端声明的能力过多
	ErrTooManyRemoteCapabilities = errors.New("capability: too many remote capabilities")
)
