package ethcap

import (
	"errors"

	"github.com/dep2p/go-ethcap/internal/core/capability"
	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
	"github.com/dep2p/go-ethcap/pkg/types"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 能力解析错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrUnsupportedVersion eth 能力版本不受支持
	ErrUnsupportedVersion = types.ErrUnsupportedVersion

	// ErrUnknownCapability 未知能力无法确定消息数量
	ErrUnknownCapability = types.ErrUnknownCapability

	// ErrMalformed 线上编码非法
	ErrMalformed = capwire.ErrMalformed

	// ErrTooManyRemoteCapabilities 对端声明的能力过多
	ErrTooManyRemoteCapabilities = capability.ErrTooManyRemoteCapabilities

	// ────────────────────────────────────────────────────────────────────────
	// 节点生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 节点未启动
	ErrNotStarted = errors.New("node not started")

	// ErrAlreadyStarted 节点已启动
	ErrAlreadyStarted = errors.New("node already started")

	// ErrNodeClosed 节点已关闭
	ErrNodeClosed = errors.New("node closed")
)
