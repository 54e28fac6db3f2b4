package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/careersg/mycf-widgets/internal/config"
	"github.com/careersg/mycf-widgets/internal/mcp"
	"github.com/careersg/mycf-widgets/pkg/logging"
	"github.com/careersg/mycf-widgets/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.BuildResources(cfg, logger)
	if err != nil {
		logger.Error("failed to build resources", "err", err)
		os.Exit(1)
	}

	srv, err := mcp.NewServer(logger, cfg, res)
	if err != nil {
		logger.Error("failed to construct MCP server", "err", err)
		os.Exit(1)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
