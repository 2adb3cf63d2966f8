package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// Videos resolves many videos concurrently, fanned out over at most
// cfg.Fanout parallel pipelines. Each id resolves independently: a failed or
// unrecognizable entity leaves a nil slot at its index and never fails the
// batch. Result order matches the input order.
func (e *Engine) Videos(ctx context.Context, ids []string, loc tube.Locale) []*tube.Video {
	out := make([]*tube.Video, len(ids))
	var g errgroup.Group
	g.SetLimit(e.cfg.Fanout)
	for i, id := range ids {
		g.Go(func() error {
			v, err := e.Video(ctx, id, loc)
			if err != nil {
				return nil
			}
			out[i] = v
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Channels is the channel-kind counterpart of Videos.
func (e *Engine) Channels(ctx context.Context, ids []string, loc tube.Locale) []*tube.Channel {
	out := make([]*tube.Channel, len(ids))
	var g errgroup.Group
	g.SetLimit(e.cfg.Fanout)
	for i, id := range ids {
		g.Go(func() error {
			c, err := e.Channel(ctx, id, loc)
			if err != nil {
				return nil
			}
			out[i] = c
			return nil
		})
	}
	_ = g.Wait()
	return out
}
