package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	t.Run("accumulates quantities per product", func(t *testing.T) {
		l := NewLedger()

		items := l.Add("s1", "p1", 2)
		assert.Equal(t, map[string]int{"p1": 2}, items)

		items = l.Add("s1", "p1", 3)
		assert.Equal(t, map[string]int{"p1": 5}, items)

		items = l.Add("s1", "p2", 1)
		assert.Equal(t, map[string]int{"p1": 5, "p2": 1}, items)
	})

	t.Run("non-positive quantity counts as one", func(t *testing.T) {
		l := NewLedger()

		assert.Equal(t, map[string]int{"p1": 1}, l.Add("s1", "p1", 0))
		assert.Equal(t, map[string]int{"p1": 2}, l.Add("s1", "p1", -5))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		l := NewLedger()
		l.Add("s1", "p1", 1)
		l.Add("s2", "p1", 4)

		assert.Equal(t, map[string]int{"p1": 1}, l.Get("s1"))
		assert.Equal(t, map[string]int{"p1": 4}, l.Get("s2"))
	})
}

func TestGetUnknownSession(t *testing.T) {
	l := NewLedger()
	items := l.Get("nope")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSnapshotIsACopy(t *testing.T) {
	l := NewLedger()
	items := l.Add("s1", "p1", 1)
	items["p1"] = 99

	assert.Equal(t, map[string]int{"p1": 1}, l.Get("s1"))
}

func TestConcurrentAdds(t *testing.T) {
	const n = 100
	l := NewLedger()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Add("s1", "p1", 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, map[string]int{"p1": n}, l.Get("s1"))
}
