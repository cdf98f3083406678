// Package capwire 提供能力列表和能力消息的线上编码
//
// # 能力列表
//
// 能力列表使用 protobuf 线格式，等价于：
//
//	message Capability {
//	    string name    = 1;
//	    uint64 version = 2;
//	}
//
//	message Capabilities {
//	    repeated Capability capabilities = 1;
//	}
//
// 每个 Capability 作为长度前缀的嵌入消息按顺序写入，解码保持原顺序，
// 并通过 types.NewCapabilities 重新计算 eth 版本标志（线上没有标志字段）。
// 未知字段会被跳过。编解码无损，不限制数量和名称长度；
// 接收对端声明时用 CheckLimits 检查 MaxCapabilities 和 MaxNameLength。
//
// 基本用法：
//
//	data := capwire.EncodeCapabilities(local)
//	remote, err := capwire.DecodeCapabilities(data)
//
// 在流上传输时使用 varint 长度前缀：
//
//	err := capwire.WriteCapabilities(w, local)
//	remote, err := capwire.ReadCapabilities(r)
//
// # 能力消息帧
//
// RawCapabilityMessage 的帧格式为 [uvarint id][payload]，
// id 必须是最短编码。
package capwire
