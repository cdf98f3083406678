// Package main 提供 ethcap 命令行入口
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/dep2p/go-ethcap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// run 分发子命令
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printHelp(out)
		return nil
	}

	switch args[0] {
	case "encode":
		return runEncode(args[1:], out)
	case "decode":
		return runDecode(args[1:], out)
	case "resolve":
		return runResolve(args[1:], out)
	case "listen":
		return runHello(args[1:], out, false)
	case "dial":
		return runHello(args[1:], out, true)
	case "version":
		printVersion(out)
		return nil
	case "help", "-h", "--help":
		printHelp(out)
		return nil
	default:
		return fmt.Errorf("未知命令: %s", args[0])
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 离线命令
// ═══════════════════════════════════════════════════════════════════════════

// runEncode 将能力列表编码为十六进制
func runEncode(args []string, out io.Writer) error {
	caps, err := parseCapabilities(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hex.EncodeToString(ethcap.EncodeCapabilities(ethcap.NewCapabilities(caps...))))
	return nil
}

// runDecode 解码十六进制能力声明
func runDecode(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("用法: ethcap decode <hex>")
	}
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("无效的十六进制: %w", err)
	}
	caps, err := ethcap.DecodeCapabilities(data)
	if err != nil {
		return err
	}
	printCapabilities(out, caps)
	return nil
}

// runResolve 解析 name/version@offset 形式的共享能力
func runResolve(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("用法: ethcap resolve <name/version@offset>...")
	}
	for _, arg := range args {
		shared, err := parseShared(arg)
		if err != nil {
			return err
		}
		n, err := shared.NumMessages()
		switch {
		case errors.Is(err, ethcap.ErrUnknownCapability):
			fmt.Fprintf(out, "%s\tmessages=unknown\n", shared)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "%s\tmessages=%d\tids=[%d,%d)\n", shared, n, shared.Offset(), int(shared.Offset())+int(n))
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 在线命令
// ═══════════════════════════════════════════════════════════════════════════

// runHello 监听或连接一个地址并交换能力声明
func runHello(args []string, out io.Writer, dial bool) error {
	name := "listen"
	if dial {
		name = "dial"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	addr := fs.String("addr", "127.0.0.1:30311", "地址")
	configFile := fs.String("config", "", "配置文件路径")
	capsFlag := fs.String("caps", "", "本地能力，逗号分隔（例如 eth/67,snap/1）")
	logLevel := fs.String("log-level", "", "日志级别 (debug/info/warn/error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := buildOptions(*configFile, *capsFlag, *logLevel)
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	node, err := ethcap.Start(ctx, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = node.Close() }()

	var conn net.Conn
	if dial {
		var d net.Dialer
		conn, err = d.DialContext(ctx, "tcp", *addr)
		if err != nil {
			return err
		}
	} else {
		conn, err = acceptOne(ctx, *addr, out)
		if err != nil {
			return err
		}
	}
	defer conn.Close()

	remote, err := node.Capabilities().Exchange(ctx, conn, dial)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "对端 %s 的能力:\n", conn.RemoteAddr())
	printCapabilities(out, remote)
	return nil
}

// acceptOne 监听地址并接受一个连接
func acceptOne(ctx context.Context, addr string, out io.Writer) (net.Conn, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()

	fmt.Fprintf(out, "监听 %s\n", ln.Addr())

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()
	return ln.Accept()
}

// ═══════════════════════════════════════════════════════════════════════════
// 输出
// ═══════════════════════════════════════════════════════════════════════════

// printCapabilities 打印能力列表
func printCapabilities(out io.Writer, caps *ethcap.Capabilities) {
	for _, c := range caps.Capabilities() {
		fmt.Fprintf(out, "  %s\n", c)
	}
	fmt.Fprintf(out, "eth66=%t eth67=%t\n", caps.SupportsEthV66(), caps.SupportsEthV67())
}

// printVersion 打印版本信息
func printVersion(out io.Writer) {
	fmt.Fprintf(out, "ethcap %s\n", ethcap.Version)
	if ethcap.GitCommit != "" {
		fmt.Fprintf(out, "  commit: %s\n", ethcap.GitCommit)
	}
	if ethcap.BuildDate != "" {
		fmt.Fprintf(out, "  built:  %s\n", ethcap.BuildDate)
	}
}

// printHelp 打印帮助信息
func printHelp(out io.Writer) {
	fmt.Fprintln(out, "ethcap - 能力协商工具")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "用法:")
	fmt.Fprintln(out, "  ethcap encode <name/version>...          编码能力声明")
	fmt.Fprintln(out, "  ethcap decode <hex>                      解码能力声明")
	fmt.Fprintln(out, "  ethcap resolve <name/version@offset>...  解析共享能力")
	fmt.Fprintln(out, "  ethcap listen [-addr] [-config] [-caps]  等待对端并交换声明")
	fmt.Fprintln(out, "  ethcap dial [-addr] [-config] [-caps]    连接对端并交换声明")
	fmt.Fprintln(out, "  ethcap version                           显示版本信息")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "环境变量:")
	fmt.Fprintln(out, "  ETHCAP_CAPABILITIES  本地能力（逗号分隔）")
	fmt.Fprintln(out, "  ETHCAP_LOG_LEVEL     日志级别")
}
