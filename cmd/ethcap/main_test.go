package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-ethcap"
)

// TestParseCapability 测试 name/version 解析
func TestParseCapability(t *testing.T) {
	tests := []struct {
		in      string
		want    ethcap.Capability
		wantErr bool
	}{
		{"eth/67", ethcap.NewCapability("eth", 67), false},
		{"snap/1", ethcap.NewCapability("snap", 1), false},
		{"eth", ethcap.Capability{}, true},
		{"/1", ethcap.Capability{}, true},
		{"eth/x", ethcap.Capability{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCapability(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseShared 测试 name/version@offset 解析
func TestParseShared(t *testing.T) {
	shared, err := parseShared("eth/67@0x10")
	require.NoError(t, err)
	assert.Equal(t, "eth/67@16", shared.String())

	_, err = parseShared("eth/65@16")
	assert.ErrorIs(t, err, ethcap.ErrUnsupportedVersion)

	_, err = parseShared("eth/67")
	assert.Error(t, err)

	_, err = parseShared("eth/67@256")
	assert.Error(t, err)

	_, err = parseShared("x/300@1")
	assert.Error(t, err)
}

// TestRun_EncodeDecode 测试编码后解码
func TestRun_EncodeDecode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"encode", "eth/67"}, &out))
	assert.Equal(t, "0a070a036574681043\n", out.String())

	hexStr := strings.TrimSpace(out.String())
	out.Reset()
	require.NoError(t, run([]string{"decode", hexStr}, &out))
	assert.Contains(t, out.String(), "eth/67")
	assert.Contains(t, out.String(), "eth66=false eth67=true")

	assert.Error(t, run([]string{"decode", "zz"}, &out))
	assert.Error(t, run([]string{"decode", "80"}, &out))
}

// TestRun_Resolve 测试共享能力解析输出
func TestRun_Resolve(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"resolve", "eth/67@16", "snap/1@29"}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "eth/67@16\tmessages=13\tids=[16,29)", lines[0])
	assert.Equal(t, "snap/1@29\tmessages=unknown", lines[1])
}

// TestRun_Misc 测试其他命令
func TestRun_Misc(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "用法")

	out.Reset()
	require.NoError(t, run([]string{"version"}, &out))
	assert.Contains(t, out.String(), ethcap.Version)

	assert.Error(t, run([]string{"bogus"}, &out))
}

// TestBuildOptions 测试选项构建优先级
func TestBuildOptions(t *testing.T) {
	t.Setenv(EnvCapabilities, "eth/66")

	opts, err := buildOptions("", "", "")
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	opts, err = buildOptions("", "eth/67, snap/1", "debug")
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	_, err = buildOptions("", "eth", "")
	assert.Error(t, err)

	_, err = buildOptions("/nonexistent/ethcap.json", "", "")
	assert.Error(t, err)
}
