package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Facial Serum", Category: "Skin Care", Tags: []string{"facial", "energy"}, Price: 25, Currency: "USD"},
		{ID: "p2", Name: "Daily Multivitamin", Category: "Nutrition", Tags: []string{"energy", "vitamins"}, Price: 32.5, Currency: "USD"},
		{ID: "p3", Name: "Body Lotion", Category: "Skin Care", Tags: []string{"skin"}, Price: 18.9, Currency: "USD"},
		{ID: "p4", Name: "Multi-Purpose Cleaner", Category: "Home", Price: 12, Currency: "USD"},
	}
}

func TestMatch(t *testing.T) {
	ix := New(testProducts())

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := ix.Match("FACIAL", 10)
		require.Len(t, results, 1)
		assert.Equal(t, "p1", results[0].ID)
	})

	t.Run("matches tags", func(t *testing.T) {
		results := ix.Match("energy", 10)
		require.Len(t, results, 2)
		assert.Equal(t, "p1", results[0].ID)
		assert.Equal(t, "p2", results[1].ID)
	})

	t.Run("matches category and preserves catalog order", func(t *testing.T) {
		results := ix.Match("skin care", 10)
		require.Len(t, results, 2)
		assert.Equal(t, "p1", results[0].ID)
		assert.Equal(t, "p3", results[1].ID)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		results := ix.Match("skin care", 1)
		require.Len(t, results, 1)
		assert.Equal(t, "p1", results[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, ix.Match("zzz", 10))
	})

	t.Run("empty and whitespace queries match nothing", func(t *testing.T) {
		assert.Empty(t, ix.Match("", 10))
		assert.Empty(t, ix.Match("   ", 10))
	})
}

func TestCategories(t *testing.T) {
	ix := New(testProducts())
	assert.Equal(t, []string{"Skin Care", "Nutrition", "Home"}, ix.Categories())
}

func TestFindByID(t *testing.T) {
	ix := New(testProducts())

	p, ok := ix.FindByID("p2")
	require.True(t, ok)
	assert.Equal(t, "Daily Multivitamin", p.Name)

	_, ok = ix.FindByID("nope")
	assert.False(t, ok)
}

func TestDuplicateIDsKeepFirst(t *testing.T) {
	ix := New([]models.Product{
		{ID: "p1", Name: "First", Category: "A"},
		{ID: "p1", Name: "Second", Category: "B"},
	})

	assert.Equal(t, 1, ix.Len())
	p, ok := ix.FindByID("p1")
	require.True(t, ok)
	assert.Equal(t, "First", p.Name)
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields empty catalog", func(t *testing.T) {
		ix := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, 0, ix.Len())
		assert.Empty(t, ix.Match("anything", 10))
	})

	t.Run("malformed file yields empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		ix := Load(path)
		assert.Equal(t, 0, ix.Len())
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		data := `[{"id":"p1","name":"Facial Serum","category":"Skin Care","tags":["facial"],"price":25,"currency":"USD"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		ix := Load(path)
		require.Equal(t, 1, ix.Len())
		assert.Equal(t, []string{"Skin Care"}, ix.Categories())
	})
}
