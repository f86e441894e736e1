// Package main runs the sensefit MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/sensefit/internal"
	"github.com/2beens/sensefit/internal/config"
	"github.com/2beens/sensefit/internal/logging"
	sensefitmcp "github.com/2beens/sensefit/internal/mcp"
	"github.com/2beens/sensefit/internal/stats"
	"github.com/2beens/sensefit/internal/workout"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol, logs go to the file only
	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	if cfg.LogsPath == "" {
		log.SetOutput(os.Stderr)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	storage, err := internal.OpenStorage(ctx, internal.OpenStorageParams{
		Config:           cfg,
		RedisPassword:    os.Getenv("SENSEFIT_REDIS_PASS"),
		PostgresPassword: os.Getenv("SENSEFIT_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Errorf("close storage: %s", err)
		}
	}()

	repo := workout.NewRepo(storage.Store, nil)
	server := sensefitmcp.NewServer(stats.NewAnalyzer(repo), repo)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Errorf("mcp server: %s", err)
	}
}
