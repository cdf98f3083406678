// Package ethcap 提供 P2P 线协议的能力协商基础类型
//
// 连接建立时双方各自声明支持的子协议（能力）及版本，协商出共享子集后，
// 每个共享能力在同一连接的消息 ID 空间中占用一段连续、互不重叠的区间。
//
// # 核心概念
//
//   - Capability: 名称 + 版本，例如 eth/67
//   - Capabilities: 有序能力列表，缓存 eth/66、eth/67 是否存在
//   - SharedCapability: 协商后的能力，带偏移量；eth 版本已校验
//   - capwire: 能力列表和能力消息帧的线上编码
//
// # 快速开始
//
//	import "github.com/dep2p/go-ethcap"
//
//	node, err := ethcap.Start(ctx,
//	    ethcap.WithLocalCapabilities(
//	        ethcap.NewCapability("eth", 67),
//	        ethcap.NewCapability("snap", 1),
//	    ),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer node.Close()
//
//	svc := node.Capabilities()
//	send(svc.Advertisement())
//
//	remote, err := svc.DecodeRemote(received)
//	shared, err := svc.Resolve("eth", 67, 0x10)
//
// 只需要值类型时直接使用：
//
//	shared, err := ethcap.NewSharedCapability("eth", 67, 0x10)
//	n, err := shared.NumMessages() // 13
//
// # 偏移量约定
//
// 握手组件负责求交集和分配偏移量（本库不实现）。约定顺序为
// eth 在前、其余按名称升序，每个名称取双方都支持的最高版本，
// offset(i+1) = offset(i) + NumMessages(i)。
//
// # 文件组织
//
//   - ethcap.go   - 版本信息、类型别名、构造函数
//   - errors.go   - 公共错误
//   - options.go  - 选项
//   - node.go     - Node（Fx 应用封装）
package ethcap
