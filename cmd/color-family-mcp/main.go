package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/color-family-mcp/internal/config"
	"github.com/ironsheep/color-family-mcp/internal/family"
	"github.com/ironsheep/color-family-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-family-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-family-mcp - MCP server for color family classification")
			fmt.Println()
			fmt.Println("Usage: color-family-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MCP_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  COLOR_MCP_SETTINGS=<path>       Settings file for hue boundaries and ΔE threshold")
			fmt.Println("  COLOR_MCP_DELTA_E=2.0           ΔE00 conflict threshold")
			fmt.Println("  COLOR_MCP_WORKERS=4             Workers for catalog reclassification")
			fmt.Println("  COLOR_MCP_OCR_LANG=por          Tesseract language for swatch labels")
			fmt.Println("  COLOR_MCP_WHITE_BALANCE=false   Compensate L*a*b* readings by default")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("Color Family MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	settings := config.NewSettingsStore(cfg.SettingsPath, cfg.DeltaEThreshold)
	loaded, err := settings.Load()
	if err != nil {
		log.Fatalf("Settings error: %v", err)
	}
	family.SetHueBoundaries(loaded.HueBoundaries.Update())
	if cfg.SettingsPath != "" {
		log.Printf("Settings loaded from %s (ΔE threshold %.2f)", cfg.SettingsPath, loaded.DeltaThreshold)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		// Unblock the stdin reader so Run returns.
		os.Stdin.Close()
	}()

	server.Version = Version
	srv := server.New(cfg, settings)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", err)
	}
}
