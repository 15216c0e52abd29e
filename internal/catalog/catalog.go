package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/minhng-ct/commerce-bot/internal/models"
)

// Index holds the immutable product list. It is built once at startup and
// is safe for concurrent reads without synchronization.
type Index struct {
	products   []models.Product
	matchKeys  []string
	byID       map[string]models.Product
	categories []string
}

// Load reads a product list from a JSON file. A missing or malformed file
// is not fatal: the service stays up with an empty catalog and every match
// returns zero results.
func Load(path string) *Index {
	log := logger.MustNamed("catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnw("catalog file unreadable, starting with empty catalog",
			"path", path, "error", err)
		return New(nil)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Warnw("catalog file malformed, starting with empty catalog",
			"path", path, "error", err)
		return New(nil)
	}

	log.Infow("catalog loaded", "path", path, "products", len(products))
	return New(products)
}

// New builds an index over the given products. Duplicate ids keep the
// first occurrence.
func New(products []models.Product) *Index {
	ix := &Index{
		byID: make(map[string]models.Product, len(products)),
	}

	seenCategory := make(map[string]bool)
	for _, p := range products {
		if _, dup := ix.byID[p.ID]; dup {
			logger.MustNamed("catalog").Warnw("duplicate product id skipped", "id", p.ID)
			continue
		}
		ix.byID[p.ID] = p
		ix.products = append(ix.products, p)
		ix.matchKeys = append(ix.matchKeys, matchKey(p))
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			ix.categories = append(ix.categories, p.Category)
		}
	}
	return ix
}

// matchKey is the concatenation a query is matched against.
func matchKey(p models.Product) string {
	return strings.ToLower(p.Name + " " + p.Category + " " + strings.Join(p.Tags, " "))
}

// Categories returns the distinct categories in first-seen order.
func (ix *Index) Categories() []string {
	out := make([]string, len(ix.categories))
	copy(out, ix.categories)
	return out
}

// Match returns up to limit products whose name, category or tags contain
// the query, case-insensitively, preserving catalog order. An empty or
// whitespace-only query matches nothing.
func (ix *Index) Match(query string, limit int) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var matches []models.Product
	for i, key := range ix.matchKeys {
		if strings.Contains(key, q) {
			matches = append(matches, ix.products[i])
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// FindByID looks a product up by its id.
func (ix *Index) FindByID(id string) (models.Product, bool) {
	p, ok := ix.byID[id]
	return p, ok
}

// Products returns the catalog in load order.
func (ix *Index) Products() []models.Product {
	out := make([]models.Product, len(ix.products))
	copy(out, ix.products)
	return out
}

func (ix *Index) Len() int {
	return len(ix.products)
}
