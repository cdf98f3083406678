package ethcap

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-ethcap/config"
	"github.com/dep2p/go-ethcap/internal/core/capability"
	"github.com/dep2p/go-ethcap/internal/util/logger"
	pkgif "github.com/dep2p/go-ethcap/pkg/interfaces"
)

var log = logger.Logger("ethcap")

// Node 能力服务节点
//
// 封装 Fx 应用，对外提供 CapabilityService。
type Node struct {
	mu      sync.Mutex
	app     *fx.App
	config  *config.Config
	service pkgif.CapabilityService
	started bool
	closed  bool
}

// New 创建节点（未启动）
func New(_ context.Context, opts ...Option) (*Node, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	cfg, err := config.ValidateAndFix(o.config)
	if err != nil {
		return nil, err
	}
	applyLogConfig(cfg.Log)

	node := &Node{config: cfg}
	node.app = buildFxApp(o, node)
	if err := node.app.Err(); err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	return node, nil
}

// Start 创建节点并立即启动
func Start(ctx context.Context, opts ...Option) (*Node, error) {
	node, err := New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if err := node.Start(ctx); err != nil {
		return nil, fmt.Errorf("start node: %w", err)
	}
	return node, nil
}

// buildFxApp 构建 Fx 应用
func buildFxApp(o *options, node *Node) *fx.App {
	modules := []fx.Option{
		fx.Supply(o.config),
		capability.Module(),
		fx.Populate(&node.service),
	}
	modules = append(modules, o.userFxOptions...)

	if o.fxEventLog {
		modules = append(modules, fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.Logger("fx")}
		}))
	} else {
		modules = append(modules, fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}))
	}

	return fx.New(modules...)
}

// applyLogConfig 将配置中的日志级别应用到全局
//
// 设置了 ETHCAP_LOG_LEVEL 时保留环境变量中的级别。
func applyLogConfig(cfg config.LogConfig) {
	if os.Getenv(logger.EnvLevel) != "" {
		return
	}
	if level, ok := logger.ParseLevel(cfg.Level); ok {
		logger.SetGlobalLevel(level)
	}
}

// Start 启动节点
func (n *Node) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrNodeClosed
	}
	if n.started {
		return ErrAlreadyStarted
	}
	if err := n.app.Start(ctx); err != nil {
		return err
	}
	n.started = true
	log.Info("节点已启动", "version", Version)
	return nil
}

// Close 停止节点
func (n *Node) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil
	}
	n.closed = true
	if !n.started {
		return nil
	}
	n.started = false
	return n.app.Stop(context.Background())
}

// Capabilities 返回能力服务
func (n *Node) Capabilities() pkgif.CapabilityService {
	return n.service
}

// Config 返回生效的配置
func (n *Node) Config() *config.Config {
	return n.config
}

// IsRunning 是否正在运行
func (n *Node) IsRunning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.started
}

// Advertisement 返回本地能力声明的编码
//
// 节点未运行时返回 ErrNotStarted。
func (n *Node) Advertisement() ([]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil, ErrNodeClosed
	}
	if !n.started {
		return nil, ErrNotStarted
	}
	return n.service.Advertisement(), nil
}
