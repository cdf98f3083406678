package capability

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dep2p/go-ethcap/internal/util/logger"
	pkgif "github.com/dep2p/go-ethcap/pkg/interfaces"
	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
	"github.com/dep2p/go-ethcap/pkg/types"
)

var log = logger.Logger("core/capability")

// decodeCacheSize 对端声明解码缓存容量
//
// 同一网络中大多数节点的声明字节完全相同，缓存命中率很高。
const decodeCacheSize = 128

// Service 能力服务
type Service struct {
	local         *types.Capabilities
	advertisement []byte
	maxRemote     int

	// decoded 以声明字节为键缓存解码结果，值不可变，可在连接间共享
	decoded *lru.Cache[string, *types.Capabilities]
}

var _ pkgif.CapabilityService = (*Service)(nil)

// NewService 创建能力服务
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	decoded, err := lru.New[string, *types.Capabilities](decodeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create decode cache: %w", err)
	}

	local := types.NewCapabilities(cfg.Local)
	return &Service{
		local:         local,
		advertisement: capwire.EncodeCapabilities(local),
		maxRemote:     cfg.MaxRemoteCapabilities,
		decoded:       decoded,
	}, nil
}

// Local 返回本地支持的能力
func (s *Service) Local() *types.Capabilities {
	return s.local
}

// Advertisement 返回本地能力的线上编码（副本）
func (s *Service) Advertisement() []byte {
	out := make([]byte, len(s.advertisement))
	copy(out, s.advertisement)
	return out
}

// DecodeRemote 解析对端的能力声明
//
// 相同的声明字节直接返回缓存的结果。
func (s *Service) DecodeRemote(data []byte) (*types.Capabilities, error) {
	key := string(data)
	if remote, ok := s.decoded.Get(key); ok {
		return remote, nil
	}

	remote, err := capwire.DecodeCapabilities(data)
	if err != nil {
		log.Debug("解析对端能力失败", "len", len(data), "err", err)
		return nil, err
	}

	if err := s.checkRemote(remote); err != nil {
		return nil, err
	}

	log.Debug("解析对端能力",
		"count", remote.Len(),
		"eth66", remote.SupportsEthV66(),
		"eth67", remote.SupportsEthV67())

	s.decoded.Add(key, remote)
	return remote, nil
}

// checkRemote 检查对端能力数量和名称长度
func (s *Service) checkRemote(remote *types.Capabilities) error {
	if err := capwire.CheckLimits(remote); err != nil {
		log.Debug("对端能力超出限制", "count", remote.Len(), "err", err)
		return err
	}
	if remote.Len() > s.maxRemote {
		log.Debug("对端能力过多", "count", remote.Len(), "max", s.maxRemote)
		return fmt.Errorf("%w: %d > %d", ErrTooManyRemoteCapabilities, remote.Len(), s.maxRemote)
	}
	return nil
}

// Resolve 将共享能力解析为 SharedCapability
func (s *Service) Resolve(name string, version, offset uint8) (types.SharedCapability, error) {
	shared, err := types.NewSharedCapability(name, version, offset)
	if err != nil {
		if errors.Is(err, types.ErrUnsupportedVersion) {
			log.Debug("共享能力版本不受支持",
				"name", name,
				"version", version,
				"offset", offset)
		}
		return nil, err
	}
	return shared, nil
}
