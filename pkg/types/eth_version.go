package types

import "strconv"

// EthVersion 受支持的 eth 子协议版本
//
// 只能取 SupportedEthVersions 中的值，通过 EthVersionFromByte 或
// ParseEthVersion 获得。
type EthVersion uint8

const (
	// EthVersion66 eth/66
	EthVersion66 EthVersion = 66

	// EthVersion67 eth/67
	EthVersion67 EthVersion = 67
)

// SupportedEthVersions 受支持的 eth 版本（升序）
var SupportedEthVersions = []EthVersion{EthVersion66, EthVersion67}

// ethTotalMessages 各版本的消息数量
//
// eth/67 移除了 GetNodeData/NodeData。
var ethTotalMessages = map[EthVersion]uint8{
	EthVersion66: 15,
	EthVersion67: 13,
}

// EthVersionFromByte 将版本字节转换为 EthVersion
func EthVersionFromByte(v uint8) (EthVersion, error) {
	switch EthVersion(v) {
	case EthVersion66, EthVersion67:
		return EthVersion(v), nil
	default:
		return 0, &ParseVersionError{Value: strconv.FormatUint(uint64(v), 10)}
	}
}

// ParseEthVersion 解析十进制版本字符串，如 "67"
func ParseEthVersion(s string) (EthVersion, error) {
	switch s {
	case "66":
		return EthVersion66, nil
	case "67":
		return EthVersion67, nil
	default:
		return 0, &ParseVersionError{Value: s}
	}
}

// TotalMessages 返回该版本的协议消息数量
func (v EthVersion) TotalMessages() uint8 {
	return ethTotalMessages[v]
}

// String 返回版本号字符串
func (v EthVersion) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
