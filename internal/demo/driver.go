package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swantron/controlflow/internal/console"
)

// Driver runs demonstrations one after another, printing a numbered section
// header before each.
type Driver struct {
	env Env
	log *zap.Logger
}

// NewDriver returns a driver writing through env. A nil logger disables logging.
func NewDriver(env Env, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{env: env, log: log}
}

// Run executes demos in order. A demonstration whose input source closed is
// logged and skipped past; any other error stops the run.
func (d *Driver) Run(ctx context.Context, demos []Demo) error {
	log := d.log.With(zap.String("run_id", uuid.NewString()))
	log.Debug("starting run", zap.Int("demos", len(demos)))

	for i, demo := range demos {
		d.env.Out.Header(fmt.Sprintf("%d. %s", i+1, demo.Title))

		start := time.Now()
		err := demo.Run(ctx, d.env)
		fields := []zap.Field{
			zap.String("demo", demo.Name),
			zap.Duration("elapsed", time.Since(start)),
		}

		switch {
		case err == nil:
			log.Debug("demo finished", fields...)
		case errors.Is(err, console.ErrInputClosed):
			log.Warn("input closed before demo finished", append(fields, zap.Error(err))...)
		default:
			return fmt.Errorf("demo %s failed: %w", demo.Name, err)
		}
	}

	log.Debug("run complete")
	return nil
}
