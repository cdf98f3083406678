// Package interfaces 定义 go-ethcap 的公共接口
//
// 本包只定义契约，不包含实现：
//   - capability.go - 能力服务（本模块实现）以及外部协作方契约
//     （握手协商、子协议消息解码）
//
// 实现位置：
//   - CapabilityService        -> internal/core/capability.Service
//   - CapabilityNegotiator     -> 由握手/会话组件实现
//   - CapabilityMessageDecoder -> 由各子协议编解码器实现
package interfaces
