package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/apervushin/commons-validator/internal/config"
	"github.com/apervushin/commons-validator/internal/registry"
	"github.com/apervushin/commons-validator/internal/transport/grpc"
	httpgw "github.com/apervushin/commons-validator/internal/transport/http"
	"github.com/apervushin/commons-validator/pkg/domain"

	"golang.org/x/sync/errgroup"
)

// overridesMaxAge is how long a loaded override document keeps the
// service ready without a successful reload.
const overridesMaxAge = 24 * time.Hour

func Run(ctx context.Context, cfg config.Config) error {
	v := domain.GetInstance(cfg.AllowLocal)
	holder := registry.NewHolder()

	var ready httpgw.Readiness
	var src registry.Fetcher
	if cfg.OverridesSource != "" {
		s, err := registry.NewSource(cfg.OverridesSource)
		if err != nil {
			return err
		}
		src = s
		ready = httpgw.OverridesLoaded(holder, overridesMaxAge)
	}

	updCfg := registry.Config{
		Interval:       cfg.OverridesInterval,
		InitialBackoff: 5 * time.Second,
		MaxBackoff:     5 * time.Minute,
	}

	g, ctx := errgroup.WithContext(ctx)

	if src != nil {
		g.Go(func() error {
			return registry.Start(ctx, updCfg, src, v, holder)
		})
	} else {
		log.Printf("app: no OVERRIDES_SOURCE, serving built-in TLD lists only")
	}

	g.Go(func() error {
		return grpc.RunGRPCServer(ctx, cfg.GRPCAddr, v)
	})

	g.Go(func() error {
		return httpgw.RunHTTPGatewayServer(ctx, cfg.HTTPAddr, cfg.GRPCAddr, cfg.CORSOrigins, ready)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("app: servers stopped with error: %v", err)
		return err
	}

	log.Printf("app: servers stopped gracefully")
	return nil
}
