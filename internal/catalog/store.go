// Package catalog holds the product catalog: the in-memory store the admin
// panel mutates and the pure filter the storefront reads through.
package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrExists   = errors.New("product id already in catalog")
	ErrInvalid  = errors.New("product needs a name and a non-negative price")
)

const (
	placeholderImage = "https://picsum.photos/400/400"
	defaultDosage    = "Consult your doctor"
)

// Store keeps products in insertion order. Updates replace in place and
// deletes close the gap without reordering the remainder.
type Store struct {
	mu    sync.RWMutex
	items []Product
	index map[string]int
}

func NewStore(seed []Product) *Store {
	s := &Store{index: make(map[string]int, len(seed))}
	for i := range seed {
		_ = s.Add(&seed[i])
	}
	return s
}

// Add inserts a new product at the end of the catalog. An empty ID gets a
// fresh UUID. Missing name or negative price is rejected, and empty
// descriptive fields pick up the storefront defaults.
func (s *Store) Add(p *Product) error {
	if p.Name == "" || p.Price.IsNegative() {
		return ErrInvalid
	}
	if _, ok := ParseCategory(string(p.Category)); !ok {
		return ErrInvalid
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	applyDefaults(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[p.ID]; ok {
		return ErrExists
	}
	s.index[p.ID] = len(s.items)
	s.items = append(s.items, *p)
	return nil
}

// Update replaces the product with the matching ID, keeping its position.
func (s *Store) Update(p *Product) error {
	if p.Name == "" || p.Price.IsNegative() {
		return ErrInvalid
	}
	if _, ok := ParseCategory(string(p.Category)); !ok {
		return ErrInvalid
	}
	applyDefaults(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[p.ID]
	if !ok {
		return ErrNotFound
	}
	s.items[i] = *p
	return nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return nil
}

func (s *Store) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.items[i], nil
}

// List returns a copy of the catalog in insertion order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func applyDefaults(p *Product) {
	if p.Image == "" {
		p.Image = placeholderImage
	}
	if p.Dosage == "" {
		p.Dosage = defaultDosage
	}
}
