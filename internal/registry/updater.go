package registry

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/apervushin/commons-validator/pkg/domain"
)

type Config struct {
	Interval       time.Duration // wait between successful reloads
	InitialBackoff time.Duration // first retry delay after a failed reload
	MaxBackoff     time.Duration // cap for the retry delay
}

// Start loads the override document into v right away and then keeps it
// fresh until ctx is done. After a failed load the next attempt comes after
// an exponential backoff instead of a full interval; the lists installed by
// the last good load stay in place meanwhile.
func Start(ctx context.Context, cfg Config, src Fetcher, v *domain.Validator, holder *Holder) error {
	if cfg.Interval <= 0 {
		return nil // reloading disabled
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 5 * time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Minute
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			log.Printf("registry: updater stopped: %v", ctx.Err())
			return ctx.Err()
		case <-timer.C:
		}

		wait := cfg.Interval
		if err := updateOnce(ctx, src, v, holder); err != nil {
			failures++
			wait = calcBackoff(cfg.InitialBackoff, cfg.MaxBackoff, failures)
			log.Printf("registry: overrides load failed (attempt #%d), retry in %s: %v", failures, wait, err)
		} else {
			if failures > 0 {
				log.Printf("registry: overrides load recovered after %d failures", failures)
			}
			failures = 0
		}
		timer.Reset(wait)
	}
}

// calcBackoff doubles initial per consecutive failure up to max, then adds
// ±20% jitter.
func calcBackoff(initial, max time.Duration, failures int) time.Duration {
	backoff := initial
	for i := 1; i < failures && backoff < max; i++ {
		backoff *= 2
	}
	if backoff > max {
		backoff = max
	}

	jitter := (rand.Float64()*0.4 - 0.2) * float64(backoff)
	return backoff + time.Duration(jitter)
}

// updateOnce fetches the override document and installs it on v.
func updateOnce(ctx context.Context, src Fetcher, v *domain.Validator, holder *Holder) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	o, err := src.FetchOverrides(ctx)
	if err != nil {
		return err
	}
	if err := Apply(v, o); err != nil {
		return err
	}

	holder.Set(&Status{LastUpdated: time.Now(), Entries: o.Entries()})
	return nil
}
