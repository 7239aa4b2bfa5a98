package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/lora-bbs/internal/adapters/link"
	"github.com/bnema/lora-bbs/internal/config"
	"github.com/bnema/lora-bbs/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// linkRetryBackoff is the pause before reopening a link that failed to open.
var linkRetryBackoff = time.Second

func newServeCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the BBS on the configured link until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cmd, state)
		},
	}

	flags := cmd.Flags()
	flags.String("link", "", "Link kind: serial, tcp or stdio")
	flags.String("serial-port", "", "Serial device of the LoRa radio")
	flags.Int("baud", 0, "Serial baud rate")
	flags.String("tcp-address", "", "Listen address for tcp links")
	bindFlags(state.v, flags, map[string]string{
		config.KeyLinkKind:   "link",
		config.KeySerialPort: "serial-port",
		config.KeySerialBaud: "baud",
		config.KeyTCPAddress: "tcp-address",
	})

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, state *rootState) error {
	log := state.log

	a, err := wireApp(ctx, state.cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("close storage", zap.Error(err))
		}
	}()

	source, err := openSource(ctx, state.cfg.Link, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("open link source: %w", err)
	}
	log.Info("bbs serving", zap.Stringer("link", source), zap.String("storage", state.cfg.Storage.Backend))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return serveLinks(gctx, source, a.engine, log)
	})
	g.Go(func() error {
		<-gctx.Done()
		return source.Close()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("bbs stopped")
	return nil
}

// serveLinks hands each link from source to the engine in turn until the
// source is exhausted or ctx ends.
func serveLinks(ctx context.Context, source link.Source, engine *session.Engine, log *zap.Logger) error {
	for {
		conn, err := source.Next(ctx)
		switch {
		case errors.Is(err, link.ErrExhausted):
			return nil
		case ctx.Err() != nil:
			if conn != nil {
				_ = conn.Close()
			}
			return nil
		case err != nil:
			log.Warn("open link", zap.Stringer("link", source), zap.Error(err), zap.Duration("retry_in", linkRetryBackoff))
			select {
			case <-time.After(linkRetryBackoff):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		log.Info("link opened", zap.Stringer("link", source))
		err = engine.Serve(ctx, conn)
		if closeErr := conn.Close(); closeErr != nil {
			log.Debug("close link", zap.Error(closeErr))
		}
		if err != nil && ctx.Err() == nil {
			log.Warn("serve link", zap.Error(err))
		}
		log.Info("link closed", zap.Stringer("link", source))
	}
}
