package memory

import "sync"

type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Change describe una mutación aplicada a un store en memoria.
type Change struct {
	Entity string // pets | records | weights | illnesses | users
	ID     string
	Kind   ChangeKind
}

// Feed es un fan-out simple de cambios. Los repos publican después de aplicar
// cada mutación; los suscriptores reciben el cambio de forma síncrona, así que
// los callbacks deben ser baratos (o despachar a su propia goroutine).
type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Change)
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(Change))}
}

// Subscribe registra un listener y devuelve la función para darse de baja.
func (f *Feed) Subscribe(fn func(Change)) (unsubscribe func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subs[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

func (f *Feed) Publish(c Change) {
	if f == nil {
		return
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, fn := range f.subs {
		fn(c)
	}
}
