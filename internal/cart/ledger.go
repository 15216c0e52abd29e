package cart

import "sync"

// Ledger holds per-session carts for the process lifetime. Each session
// owns its own lock, so concurrent adds to the same session serialize
// without blocking unrelated sessions.
type Ledger struct {
	sessions sync.Map // sessionID -> *sessionCart
}

type sessionCart struct {
	mu    sync.Mutex
	items map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add increments the quantity of productID in the session's cart and
// returns a snapshot of the cart after the increment. A non-positive qty
// falls back to an increment of 1; stored quantities are always >= 1.
func (l *Ledger) Add(sessionID, productID string, qty int) map[string]int {
	if qty <= 0 {
		qty = 1
	}

	entry, _ := l.sessions.LoadOrStore(sessionID, &sessionCart{items: make(map[string]int)})
	sc := entry.(*sessionCart)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.items[productID] += qty
	return snapshot(sc.items)
}

// Get returns a snapshot of the session's cart. Unknown sessions yield an
// empty cart, never an error.
func (l *Ledger) Get(sessionID string) map[string]int {
	entry, ok := l.sessions.Load(sessionID)
	if !ok {
		return map[string]int{}
	}
	sc := entry.(*sessionCart)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	return snapshot(sc.items)
}

func snapshot(items map[string]int) map[string]int {
	out := make(map[string]int, len(items))
	for id, qty := range items {
		out[id] = qty
	}
	return out
}
