// Command domaincheck-service serves domain validation over gRPC and HTTP.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/apervushin/commons-validator/internal/app"
	"github.com/apervushin/commons-validator/internal/config"
)

func main() {
	log.SetPrefix("domaincheck-service: ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("starting: grpc=%s http=%s allow_local=%t overrides=%q",
		cfg.GRPCAddr, cfg.HTTPAddr, cfg.AllowLocal, cfg.OverridesSource)

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("stopped: %v", err)
	}
}
