// Package types 定义 go-ethcap 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是不可变的值类型，可在多个 goroutine 间直接共享。
//
// # 文件组织
//
//   - capability.go         - Capability, Capabilities
//   - eth_version.go        - EthVersion 及消息数量表
//   - shared_capability.go  - SharedCapability（EthCapability / UnknownCapability）
//   - capability_message.go - RawCapabilityMessage, EthMessage, CapabilityMessage
//   - errors.go             - 公共错误定义
//
// # 与 pkg/lib/capwire 的区别
//
// pkg/types 定义内存结构，pkg/lib/capwire 定义线上编码。
//
// # 偏移量约定
//
// SharedCapability 的偏移量由握手组件在一次协商中统一分配：
//
//  1. eth 排在最前
//  2. 其余能力按名称升序
//  3. 同名能力只取双方都支持的最高版本
//  4. offset(i+1) = offset(i) + NumMessages(i)
//
// 双方按同一规则独立计算，无需在线上交换偏移量。
package types
