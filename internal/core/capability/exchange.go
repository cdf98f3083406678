package capability

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	mss "github.com/multiformats/go-multistream"

	"github.com/dep2p/go-ethcap/pkg/lib/capwire"
	"github.com/dep2p/go-ethcap/pkg/types"
)

const (
	// ExchangeProtocolID 能力声明交换协议标识
	ExchangeProtocolID = "/ethcap/hello/1.0.0"

	// defaultExchangeTimeout 默认交换超时
	defaultExchangeTimeout = 10 * time.Second
)

// Exchange 在 conn 上交换能力声明，返回对端能力
//
// 先用 multistream-select 确认双方都支持交换协议，再各发送一次
// 长度前缀的能力列表。发起方先写后读，响应方先读后写。
func (s *Service) Exchange(ctx context.Context, conn net.Conn, initiator bool) (*types.Capabilities, error) {
	deadline := time.Now().Add(defaultExchangeTimeout)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}
	defer conn.SetDeadline(time.Time{})

	if err := negotiateExchange(conn, initiator); err != nil {
		return nil, err
	}

	r := bufio.NewReader(conn)

	var (
		remote *types.Capabilities
		err    error
	)
	if initiator {
		if err = capwire.WriteCapabilities(conn, s.local); err != nil {
			return nil, fmt.Errorf("write capabilities: %w", err)
		}
		remote, err = capwire.ReadCapabilities(r)
	} else {
		remote, err = capwire.ReadCapabilities(r)
		if err == nil {
			if werr := capwire.WriteCapabilities(conn, s.local); werr != nil {
				return nil, fmt.Errorf("write capabilities: %w", werr)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read capabilities: %w", err)
	}

	if err := s.checkRemote(remote); err != nil {
		return nil, err
	}

	log.Debug("能力声明交换完成",
		"remoteAddr", conn.RemoteAddr(),
		"initiator", initiator,
		"count", remote.Len())

	return remote, nil
}

// negotiateExchange 协商交换协议
func negotiateExchange(conn net.Conn, initiator bool) error {
	if initiator {
		if err := mss.SelectProtoOrFail(ExchangeProtocolID, conn); err != nil {
			return fmt.Errorf("client exchange negotiation: %w", err)
		}
		return nil
	}

	muxer := mss.NewMultistreamMuxer[string]()
	muxer.AddHandler(ExchangeProtocolID, nil)

	proto, _, err := muxer.Negotiate(conn)
	if err != nil {
		return fmt.Errorf("server exchange negotiation: %w", err)
	}
	if proto != ExchangeProtocolID {
		return fmt.Errorf("negotiated protocol %s not supported", proto)
	}
	return nil
}
