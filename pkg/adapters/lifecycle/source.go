package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/bliss/pkg/core"
)

type datasetSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits dataset events. It
// bridges the typed dataset event channel to the generic lifecycle Event
// interface, so hosts supervising the engine can react to reloads.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &datasetSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *datasetSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *datasetSource) Start(ctx context.Context) error {
	// lifecycle.Go keeps the bridge goroutine itself tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
