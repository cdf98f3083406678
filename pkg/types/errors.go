// Package types 定义 go-ethcap 公共类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              能力相关错误
// ============================================================================

var (
	// ErrUnsupportedVersion eth 能力携带了不受支持的版本
	ErrUnsupportedVersion = errors.New("unsupported eth version")

	// ErrUnknownCapability 未知能力无法确定消息数量
	ErrUnknownCapability = errors.New("cannot determine the number of messages for unknown capabilities")

	// ErrUnknownEthVersion 无法解析的 eth 版本
	ErrUnknownEthVersion = errors.New("unknown eth protocol version")
)

// ParseVersionError eth 版本解析失败
type ParseVersionError struct {
	// Value 无法识别的原始值
	Value string
}

// Error 实现 error 接口
func (e *ParseVersionError) Error() string {
	return "unknown eth protocol version: " + e.Value
}

// Is 匹配 ErrUnknownEthVersion
func (e *ParseVersionError) Is(target error) bool {
	return target == ErrUnknownEthVersion
}

// SharedCapabilityError 创建或查询 SharedCapability 时的错误
//
// Kind 为 ErrUnsupportedVersion 或 ErrUnknownCapability，
// 两者都可以通过 errors.Is 匹配。
type SharedCapabilityError struct {
	// Kind 错误类别
	Kind error

	// Err 底层错误（ErrUnsupportedVersion 时为 *ParseVersionError）
	Err error
}

// Error 实现 error 接口
//
// 有底层错误时直接使用底层错误的描述。
func (e *SharedCapabilityError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

// Unwrap 返回错误类别和底层错误
func (e *SharedCapabilityError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
