package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dep2p/go-ethcap"
)

// EnvCapabilities 本地能力环境变量
const EnvCapabilities = "ETHCAP_CAPABILITIES"

// ============================================================================
//                              选项构建（CLI 专用）
// ============================================================================

// buildOptions 按 配置文件 < 环境变量 < 命令行参数 的优先级构建选项
func buildOptions(configFile, capsFlag, logLevel string) ([]ethcap.Option, error) {
	var opts []ethcap.Option

	if configFile != "" {
		data, err := os.ReadFile(configFile) //nolint:gosec // G304: 用户指定的配置文件路径是预期行为
		if err != nil {
			return nil, err
		}
		opts = append(opts, ethcap.WithConfigJSON(data))
	}

	capsSpec := os.Getenv(EnvCapabilities)
	if capsFlag != "" {
		capsSpec = capsFlag
	}
	if capsSpec != "" {
		caps, err := parseCapabilities(splitAndTrim(capsSpec, ","))
		if err != nil {
			return nil, err
		}
		opts = append(opts, ethcap.WithLocalCapabilities(caps...))
	}

	if logLevel != "" {
		opts = append(opts, ethcap.WithLogLevel(logLevel))
	}
	return opts, nil
}

// ============================================================================
//                              解析
// ============================================================================

// parseCapabilities 解析 name/version 列表
func parseCapabilities(args []string) ([]ethcap.Capability, error) {
	caps := make([]ethcap.Capability, 0, len(args))
	for _, arg := range args {
		c, err := parseCapability(arg)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// parseCapability 解析 name/version，例如 eth/67
func parseCapability(s string) (ethcap.Capability, error) {
	name, ver, ok := strings.Cut(s, "/")
	if !ok || name == "" {
		return ethcap.Capability{}, fmt.Errorf("无效的能力 %q，应为 name/version", s)
	}
	v, err := strconv.ParseUint(ver, 10, 0)
	if err != nil {
		return ethcap.Capability{}, fmt.Errorf("无效的能力版本 %q: %w", s, err)
	}
	return ethcap.NewCapability(name, uint(v)), nil
}

// parseShared 解析 name/version@offset，例如 eth/67@16
func parseShared(s string) (ethcap.SharedCapability, error) {
	capPart, offPart, ok := strings.Cut(s, "@")
	if !ok {
		return nil, fmt.Errorf("无效的共享能力 %q，应为 name/version@offset", s)
	}
	c, err := parseCapability(capPart)
	if err != nil {
		return nil, err
	}
	if c.Version > 0xff {
		return nil, fmt.Errorf("共享能力版本超出范围: %q", s)
	}
	off, err := strconv.ParseUint(offPart, 0, 8)
	if err != nil {
		return nil, fmt.Errorf("无效的偏移量 %q: %w", s, err)
	}
	return ethcap.NewSharedCapability(c.Name, uint8(c.Version), uint8(off))
}

// splitAndTrim 分割字符串并去除空白
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
