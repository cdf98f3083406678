package capability

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-ethcap/config"
	pkgif "github.com/dep2p/go-ethcap/pkg/interfaces"
)

// Params Capability 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("capability",
		fx.Provide(
			ProvideConfig,
			ProvideService,
			func(s *Service) pkgif.CapabilityService { return s },
		),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideConfig 从统一配置提供能力配置
func ProvideConfig(p Params) Config {
	return ConfigFromUnified(p.UnifiedCfg)
}

// ProvideService 提供能力服务
func ProvideService(cfg Config) (*Service, error) {
	return NewService(cfg)
}

// lifecycleInput 生命周期输入
type lifecycleInput struct {
	fx.In

	Lifecycle fx.Lifecycle
	Service   *Service
}

// registerLifecycle 启动时输出本地能力声明
func registerLifecycle(input lifecycleInput) {
	input.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			local := input.Service.Local()
			log.Info("本地能力已加载",
				"capabilities", local.Capabilities(),
				"eth", local.SupportsEth(),
				"advertisementLen", len(input.Service.advertisement))
			return nil
		},
	})
}
