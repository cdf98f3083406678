package capwire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dep2p/go-ethcap/pkg/types"
)

// TestCapabilities_RoundTrip 测试编码后解码得到相同的值
func TestCapabilities_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		caps []types.Capability
	}{
		{"空列表", nil},
		{"eth/66", []types.Capability{types.NewCapability("eth", 66)}},
		{"eth/66+67", []types.Capability{
			types.NewCapability("eth", 66),
			types.NewCapability("eth", 67),
		}},
		{"保持顺序", []types.Capability{
			types.NewCapability("snap", 1),
			types.NewCapability("eth", 67),
			types.NewCapability("les", 4),
			types.NewCapability("eth", 66),
		}},
		{"零值字段", []types.Capability{
			types.NewCapability("", 0),
			types.NewCapability("bzz", 0),
		}},
		{"大版本号", []types.Capability{types.NewCapability("x", 1<<31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := types.NewCapabilities(tt.caps)

			out, err := DecodeCapabilities(EncodeCapabilities(in))
			require.NoError(t, err)

			assert.True(t, in.Equal(out))
			assert.Equal(t, in.SupportsEthV66(), out.SupportsEthV66())
			assert.Equal(t, in.SupportsEthV67(), out.SupportsEthV67())
		})
	}
}

// TestEncodeCapabilities_Bytes 测试编码的字节布局
func TestEncodeCapabilities_Bytes(t *testing.T) {
	caps := types.NewCapabilities([]types.Capability{types.NewCapability("eth", 67)})

	want := []byte{
		0x0a, 0x07, // capabilities[0]，长度 7
		0x0a, 0x03, 'e', 't', 'h', // name
		0x10, 0x43, // version = 67
	}
	assert.Equal(t, want, EncodeCapabilities(caps))

	assert.Empty(t, EncodeCapabilities(nil))
	assert.Equal(t, []byte{0xff}, AppendCapabilities([]byte{0xff}, types.NewCapabilities(nil)))
}

// TestDecodeCapabilities_SkipsUnknownFields 测试跳过未知字段
func TestDecodeCapabilities_SkipsUnknownFields(t *testing.T) {
	var inner []byte
	inner = protowire.AppendTag(inner, 7, protowire.Fixed32Type)
	inner = protowire.AppendFixed32(inner, 42)
	inner = protowire.AppendTag(inner, fieldName, protowire.BytesType)
	inner = protowire.AppendString(inner, "eth")
	inner = protowire.AppendTag(inner, fieldVersion, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 66)

	var data []byte
	data = protowire.AppendTag(data, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendTag(data, fieldCapabilities, protowire.BytesType)
	data = protowire.AppendBytes(data, inner)

	caps, err := DecodeCapabilities(data)
	require.NoError(t, err)
	assert.Equal(t, []types.Capability{types.NewCapability("eth", 66)}, caps.Capabilities())
	assert.True(t, caps.SupportsEthV66())
	assert.False(t, caps.SupportsEthV67())
}

// TestDecodeCapabilities_Malformed 测试非法输入
func TestDecodeCapabilities_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"截断的 tag", []byte{0x80}, ErrMalformed},
		{"字段号为 0", []byte{0x00}, ErrMalformed},
		{"长度越界", []byte{0x0a, 0x05, 0x0a}, ErrMalformed},
		{"name 长度越界", []byte{0x0a, 0x02, 0x0a, 0x09}, ErrMalformed},
		{"version 截断", []byte{0x0a, 0x02, 0x10, 0x80}, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, err := DecodeCapabilities(tt.data)
			assert.Nil(t, caps)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestCapabilities_RoundTripBeyondLimits 测试超出对端限制的值同样可以往返
//
// 限制只由 CheckLimits 在接收对端声明时检查，编解码本身无损。
func TestCapabilities_RoundTripBeyondLimits(t *testing.T) {
	many := make([]types.Capability, MaxCapabilities+1)
	for i := range many {
		many[i] = types.NewCapability("p", uint(i))
	}
	many[MaxCapabilities] = types.NewCapability("eth", 67)

	tests := []struct {
		name    string
		caps    []types.Capability
		wantErr error
	}{
		{"33 字节名称", []types.Capability{types.NewCapability(strings.Repeat("a", MaxNameLength+1), 1)}, ErrNameTooLong},
		{"非 UTF-8 名称", []types.Capability{types.NewCapability("\xff", 1)}, nil},
		{"257 个能力", many, ErrTooManyCapabilities},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := types.NewCapabilities(tt.caps)

			out, err := DecodeCapabilities(EncodeCapabilities(in))
			require.NoError(t, err)
			assert.True(t, in.Equal(out))
			assert.Equal(t, in.SupportsEthV67(), out.SupportsEthV67())

			if tt.wantErr == nil {
				assert.NoError(t, CheckLimits(out))
			} else {
				assert.ErrorIs(t, CheckLimits(out), tt.wantErr)
			}
		})
	}
}

// TestCheckLimits 测试限制边界
func TestCheckLimits(t *testing.T) {
	assert.NoError(t, CheckLimits(nil))
	assert.NoError(t, CheckLimits(types.NewCapabilities(nil)))

	name := types.NewCapability(strings.Repeat("a", MaxNameLength), 1)
	assert.NoError(t, CheckLimits(types.NewCapabilities([]types.Capability{name})))

	list := make([]types.Capability, MaxCapabilities)
	for i := range list {
		list[i] = types.NewCapability("p", uint(i))
	}
	assert.NoError(t, CheckLimits(types.NewCapabilities(list)))
}

// TestWriteReadCapabilities 测试长度前缀流
func TestWriteReadCapabilities(t *testing.T) {
	a := types.NewCapabilities([]types.Capability{types.NewCapability("eth", 66), types.NewCapability("eth", 67)})
	b := types.NewCapabilities([]types.Capability{types.NewCapability("snap", 1)})

	var buf bytes.Buffer
	require.NoError(t, WriteCapabilities(&buf, a))
	require.NoError(t, WriteCapabilities(&buf, b))

	r := bufio.NewReader(&buf)

	got, err := ReadCapabilities(r)
	require.NoError(t, err)
	assert.True(t, a.Equal(got))
	assert.True(t, got.SupportsEth())

	got, err = ReadCapabilities(r)
	require.NoError(t, err)
	assert.True(t, b.Equal(got))
	assert.False(t, got.SupportsEth())

	_, err = ReadCapabilities(r)
	assert.ErrorIs(t, err, io.EOF)
}

// TestReadCapabilities_Errors 测试流读取错误
func TestReadCapabilities_Errors(t *testing.T) {
	t.Run("超过最大长度", func(t *testing.T) {
		r := bufio.NewReader(bytes.NewReader(protowire.AppendVarint(nil, MaxMessageSize+1)))
		_, err := ReadCapabilities(r)
		assert.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("内容截断", func(t *testing.T) {
		r := bufio.NewReader(bytes.NewReader([]byte{0x05, 0x0a}))
		_, err := ReadCapabilities(r)
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})

	t.Run("前缀截断", func(t *testing.T) {
		r := bufio.NewReader(bytes.NewReader([]byte{0x80}))
		_, err := ReadCapabilities(r)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
