package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coho-labs/actgate/internal/audit"
	"github.com/coho-labs/actgate/internal/config"
	"github.com/coho-labs/actgate/internal/gatewayhttp"
	"github.com/coho-labs/actgate/internal/react"
	"github.com/coho-labs/actgate/internal/toolcatalog"
	"github.com/coho-labs/actgate/internal/toolexec"
	"github.com/coho-labs/actgate/internal/upstream"
)

var (
	portFlag    int
	auditDBFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the actgate HTTP gateway",
	Long: `Start the actgate reverse-proxy gateway.

Examples:
  actgate serve
  actgate serve --port 9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&portFlag, "port", 0, "Port to listen on (overrides ACTGATE_PORT)")
	serveCmd.Flags().StringVar(&auditDBFlag, "audit-db", "./actgate-audit.db", "Path to the tool-execution audit ledger")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if portFlag > 0 {
		cfg.Port = portFlag
	}

	auditStore, err := audit.Open(auditDBFlag)
	if err != nil {
		return fmt.Errorf("opening audit store: %w", err)
	}
	defer auditStore.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	catalog := toolcatalog.New()
	executor := toolexec.New(cwd, auditStore)
	upstreamClient := upstream.NewHTTPClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey)
	orchestrator := react.New(upstreamClient, catalog, executor, react.SteeringPrompt(cfg.SteeringPrompt))

	srv, err := gatewayhttp.New(cfg, orchestrator)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Println("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	return srv.Start()
}
