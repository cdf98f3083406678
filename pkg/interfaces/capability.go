// Package interfaces 定义 go-ethcap 公共接口
//
// 本文件定义能力协商相关接口。
package interfaces

import (
	"context"
	"net"

	"github.com/dep2p/go-ethcap/pkg/types"
)

// CapabilityService 能力服务
//
// 握手组件通过它获取本地能力声明、解析对端声明，并逐个解析共享能力。
type CapabilityService interface {
	// Local 返回本地支持的能力
	Local() *types.Capabilities

	// Advertisement 返回本地能力的线上编码
	Advertisement() []byte

	// DecodeRemote 解析对端的能力声明
	DecodeRemote(data []byte) (*types.Capabilities, error)

	// Resolve 将一个共享能力解析为 SharedCapability
	//
	// 偏移量由调用方按统一顺序连续分配。
	Resolve(name string, version, offset uint8) (types.SharedCapability, error)

	// Exchange 在连接上交换能力声明，返回对端能力
	//
	// initiator 为 true 时先发送本地声明。
	Exchange(ctx context.Context, conn net.Conn, initiator bool) (*types.Capabilities, error)
}

// CapabilityNegotiator 握手协商器（外部实现）
//
// 负责求本地与对端能力的交集，为每个名称选择双方都支持的最高版本，
// 按 eth 优先、其余按名称排序的顺序分配偏移量。
type CapabilityNegotiator interface {
	// Negotiate 协商共享能力，结果按偏移量升序
	Negotiate(ctx context.Context, remote *types.Capabilities) ([]types.SharedCapability, error)
}

// CapabilityMessageDecoder 子协议消息解码器（外部实现）
type CapabilityMessageDecoder interface {
	// Decode 将属于 shared 的原始消息解码为能力消息
	Decode(shared types.SharedCapability, raw *types.RawCapabilityMessage) (types.CapabilityMessage, error)
}
