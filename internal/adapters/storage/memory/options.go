package memory

import (
	"context"
	"time"
)

// options comunes a todos los repos en memoria.
type options struct {
	writeDelay time.Duration
	feed       *Feed
}

type Option func(*options)

// WithWriteDelay simula latencia de escritura (p. ej. 500ms en dev para que la
// UI muestre estados de carga). En tests se deja en cero.
func WithWriteDelay(d time.Duration) Option {
	return func(o *options) { o.writeDelay = d }
}

// WithFeed conecta el repo a un feed de cambios compartido.
func WithFeed(f *Feed) Option {
	return func(o *options) { o.feed = f }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// wait aplica el write delay respetando cancelación del contexto.
func (o options) wait(ctx context.Context) error {
	if o.writeDelay <= 0 {
		return nil
	}
	t := time.NewTimer(o.writeDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (o options) emit(entity, id string, kind ChangeKind) {
	o.feed.Publish(Change{Entity: entity, ID: id, Kind: kind})
}
