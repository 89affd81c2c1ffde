// Package main implements a minimal ATEM event-tailing client: it connects
// to a switcher and prints every Message it receives until the connection
// drops or it's interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rcarmo/atem-go"
	"github.com/rcarmo/atem-go/internal/config"
	"github.com/rcarmo/atem-go/internal/logging"
)

var (
	appName    = "atemclient"
	appVersion = "dev" // injected at build time via -ldflags
)

func main() {
	args, action := parseFlags()
	if action != "" {
		return
	}
	if err := run(args); err != nil {
		log.Fatalln(err)
	}
}

type parsedArgs struct {
	address    string
	logLevel   string
	bufferSize int
}

func parseFlags() (parsedArgs, string) {
	return parseFlagsWithArgs(os.Args[1:])
}

func parseFlagsWithArgs(args []string) (parsedArgs, string) {
	fs := flag.NewFlagSet("atemclient", flag.ContinueOnError)
	addressFlag := fs.String("address", "", "switcher IP address or hostname")
	logLevelFlag := fs.String("log-level", "", "log level (debug, info, warn, error)")
	bufferSizeFlag := fs.Int("buffer-size", 0, "datagram receive buffer size in bytes")
	helpFlag := fs.Bool("help", false, "show help")
	versionFlag := fs.Bool("version", false, "show version")

	_ = fs.Parse(args)

	if *helpFlag {
		showHelp()
		return parsedArgs{}, "help"
	}
	if *versionFlag {
		showVersion()
		return parsedArgs{}, "version"
	}

	return parsedArgs{
		address:    strings.TrimSpace(*addressFlag),
		logLevel:   strings.TrimSpace(*logLevelFlag),
		bufferSize: *bufferSizeFlag,
	}, ""
}

func run(args parsedArgs) error {
	cfg, err := config.Load(config.LoadOptions{
		Address:    args.address,
		LogLevel:   args.logLevel,
		BufferSize: args.bufferSize,
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Default()
	logger.SetLevelFromString(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handle, err := atem.Open(ctx, cfg.Address,
		atem.WithLogger(logger),
		atem.WithRecvBufferSize(cfg.BufferSize),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.Address, err)
	}
	defer handle.Close()

	for {
		msg, ok := handle.Poll(ctx)
		if !ok {
			return nil
		}
		switch m := msg.(type) {
		case atem.Connected:
			fmt.Println("connected")
		case atem.Command:
			fmt.Printf("%#v\n", m.Value)
		case atem.ParsingFailed:
			fmt.Fprintf(os.Stderr, "parse error: %v\n", m.Err)
		case atem.Disconnected:
			return fmt.Errorf("disconnected: %w", m.Err)
		}
	}
}

func showHelp() {
	fmt.Println(appName)
	fmt.Println("USAGE: atemclient -address <host> [options]")
	fmt.Println("OPTIONS:")
	fmt.Println("  -address      Switcher IP address or hostname (required)")
	fmt.Println("  -log-level    Set log level (debug, info, warn, error)")
	fmt.Println("  -buffer-size  Datagram receive buffer size in bytes (default 1500)")
	fmt.Println("  -version      Show version information")
	fmt.Println("  -help         Show this help message")
	fmt.Println("ENVIRONMENT VARIABLES: ATEM_ADDRESS, ATEM_LOG_LEVEL, ATEM_BUFFER_SIZE")
	fmt.Println("EXAMPLES: atemclient -address 192.168.1.240")
}

func showVersion() {
	fmt.Printf("%s %s\n", appName, appVersion)
}
