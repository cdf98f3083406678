// Package capability 实现能力服务
//
// # 核心功能
//
// 1. 本地能力声明
//   - 从统一配置加载本节点支持的能力
//   - 预先计算线上编码，握手时直接发送
//
// 2. 对端能力解析
//   - 使用 pkg/lib/capwire 解码对端声明
//   - 限制对端能力数量
//   - 按声明字节缓存解码结果（LRU）
//
// 3. 声明交换
//   - 在 net.Conn 上用 multistream-select 协商 ExchangeProtocolID
//   - 双方各发送一次 varint 长度前缀的能力列表
//
// 4. 共享能力解析
//   - 将握手组件选出的 (name, version, offset) 解析为 SharedCapability
//   - eth 版本在这里校验，未被双方共享的声明版本永远不会触发校验错误
//
// # 偏移量分配约定
//
// 握手组件按以下顺序为共享能力分配偏移量，双方独立计算得到相同结果：
//
//	1. eth 在前，其余能力按名称升序
//	2. 每个名称取双方都支持的最高版本
//	3. offset(i+1) = offset(i) + NumMessages(i)
//
// 本包不求交集、不分配偏移量、不分发消息，这些由握手组件完成。
//
// # 使用
//
//	app := fx.New(
//	    fx.Supply(cfg),
//	    capability.Module(),
//	    fx.Invoke(func(svc pkgif.CapabilityService) {
//	        remote, err := svc.DecodeRemote(data)
//	        // ...
//	    }),
//	)
//
// # 并发
//
// Service 构造后只读，所有方法并发安全。
package capability
