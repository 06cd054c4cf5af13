package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/metaconomy/phone-number/pkg/api"
	"github.com/metaconomy/phone-number/pkg/chassis"
	"github.com/metaconomy/phone-number/pkg/importer"
	"github.com/metaconomy/phone-number/pkg/scan"
	"github.com/metaconomy/phone-number/pkg/vanity"
)

const version = "0.1.0"

type config struct {
	Addr          string `yaml:"addr"`
	DictsDir      string `yaml:"dicts_dir"`
	ScanDB        string `yaml:"scan_db"`
	CertFile      string `yaml:"cert_file"`
	KeyFile       string `yaml:"key_file"`
	CheckInterval string `yaml:"check_interval"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "scan":
		cmdScan(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: phonescan <command>

Commands:
  serve    Start the API server (HTTP/1.1, HTTP/2, HTTP/3 + MCP over QUIC)
  import   Download and build vanity wordlists from public sources
  scan     Scan a text file for phone number candidates
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig(*cfgPath, logger)

	// Load vanity wordlists.
	reg := vanity.NewRegistry(cfg.DictsDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load wordlists", "error", err)
		os.Exit(1)
	}
	logger.Info("wordlists loaded", "count", reg.DictCount(), "words", reg.TotalWords())

	// Scan store is optional.
	var scanner *scan.Scanner
	if cfg.ScanDB != "" {
		store, err := scan.OpenStore(cfg.ScanDB)
		if err != nil {
			logger.Error("failed to open scan store", "path", cfg.ScanDB, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		scanner = scan.NewScanner(store, logger)
	}

	router := api.NewRouter(reg, scanner)

	mcpSrv := server.NewMCPServer("phonescan", version)
	api.RegisterMCPTools(mcpSrv, reg)

	ch, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   router,
		MCPServer: mcpSrv,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("chassis init failed", "error", err)
		os.Exit(1)
	}

	// SIGHUP: hot reload wordlists.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading wordlists")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("wordlists reloaded", "count", reg.DictCount(), "words", reg.TotalWords())
			}
		}
	}()

	// Periodic wordlist source availability checks, when sources.db exists.
	startSourceChecker(ctx, cfg, logger)

	go func() {
		logger.Info("phonescan listening", "addr", cfg.Addr)
		if err := ch.Start(ctx); err != nil {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ch.Stop(shutdownCtx)
}

func startSourceChecker(ctx context.Context, cfg config, logger *slog.Logger) {
	sourcesDB := filepath.Join(cfg.DictsDir, "sources.db")
	if _, err := os.Stat(sourcesDB); err != nil {
		return
	}

	interval := time.Hour
	if cfg.CheckInterval != "" {
		d, err := time.ParseDuration(cfg.CheckInterval)
		if err != nil {
			logger.Error("invalid check_interval", "value", cfg.CheckInterval, "error", err)
			os.Exit(1)
		}
		if d <= 0 {
			return
		}
		interval = d
	}

	sdb, err := importer.OpenSourceDB(sourcesDB)
	if err != nil {
		logger.Error("failed to open sources db", "error", err)
		return
	}
	checker := importer.NewChecker(sdb, logger, interval)
	go func() {
		defer sdb.Close()
		checker.Start(ctx)
	}()
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:     ":8420",
		DictsDir: "dicts",
		ScanDB:   "phonescan.db",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
