// Package store keeps the served view state for concurrent readers.
package store

import (
	"sync"

	"github.com/fairyhunter13/product-card-showcase/internal/model"
	"github.com/fairyhunter13/product-card-showcase/internal/view"
)

type Store struct {
	mu    sync.RWMutex
	state view.State
	byID  map[int]model.Product
}

func New() *Store {
	return &Store{state: view.Loading(), byID: make(map[int]model.Product)}
}

// State returns the current view state.
func (s *Store) State() view.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Get looks up a product in the loaded window.
func (s *Store) Get(id int) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Resolve applies the load outcome once. Later calls return
// view.ErrIllegalTransition and leave the state unchanged.
func (s *Store) Resolve(products []model.Product, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, terr := s.state.Resolve(products, err)
	if terr != nil {
		return terr
	}
	s.state = next
	for _, p := range next.Products() {
		s.byID[p.ID] = p
	}
	return nil
}
