package capability

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-ethcap/pkg/types"
)

type exchangeResult struct {
	remote *types.Capabilities
	err    error
}

// runExchange 在内存连接两端同时执行交换
func runExchange(t *testing.T, client, server *Service) (exchangeResult, exchangeResult) {
	t.Helper()

	c, s := net.Pipe()
	defer c.Close()
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan exchangeResult, 1)
	go func() {
		remote, err := server.Exchange(ctx, s, false)
		if err != nil {
			s.Close()
		}
		done <- exchangeResult{remote, err}
	}()

	remote, err := client.Exchange(ctx, c, true)
	if err != nil {
		c.Close()
	}
	return exchangeResult{remote, err}, <-done
}

// TestService_Exchange 测试双方交换能力声明
func TestService_Exchange(t *testing.T) {
	client := newTestService(t, DefaultConfig().WithLocal(
		types.NewCapability("eth", 67),
		types.NewCapability("snap", 1),
	))
	server := newTestService(t, DefaultConfig())

	cr, sr := runExchange(t, client, server)
	require.NoError(t, cr.err)
	require.NoError(t, sr.err)

	assert.True(t, cr.remote.Equal(server.Local()))
	assert.True(t, sr.remote.Equal(client.Local()))
	assert.True(t, sr.remote.SupportsEthV67())
	assert.False(t, sr.remote.SupportsEthV66())

	t.Log("✅ 能力声明交换成功")
}

// TestService_ExchangeTooMany 测试响应方拒绝过多的能力
func TestService_ExchangeTooMany(t *testing.T) {
	client := newTestService(t, DefaultConfig().WithLocal(
		types.NewCapability("eth", 66),
		types.NewCapability("eth", 67),
		types.NewCapability("snap", 1),
	))
	server := newTestService(t, DefaultConfig().WithMaxRemoteCapabilities(2))

	_, sr := runExchange(t, client, server)
	assert.ErrorIs(t, sr.err, ErrTooManyRemoteCapabilities)
}

// TestService_ExchangeProtocolMismatch 测试对端不支持交换协议
func TestService_ExchangeProtocolMismatch(t *testing.T) {
	svc := newTestService(t, DefaultConfig())

	c, s := net.Pipe()
	defer c.Close()

	go func() {
		// 对端只读取后关闭，不响应 multistream
		buf := make([]byte, 64)
		_, _ = s.Read(buf)
		s.Close()
	}()

	_, err := svc.Exchange(context.Background(), c, true)
	assert.Error(t, err)
}
