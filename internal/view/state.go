// Package view holds the renderer-agnostic state of the product showcase:
// the load state machine, the hover selection and the card model derived
// from them.
package view

import (
	"errors"

	"github.com/fairyhunter13/product-card-showcase/internal/catalog"
	"github.com/fairyhunter13/product-card-showcase/internal/model"
)

// ErrIllegalTransition is returned when a transition is attempted from a
// terminal state.
var ErrIllegalTransition = errors.New("illegal view state transition")

// MaxCards bounds the displayed sequence.
const MaxCards = 8

// Kind tags the active variant of State.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindReady
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is one of Loading, Error(message) or Ready(products).
// The zero value is Loading.
type State struct {
	kind     Kind
	message  string
	products []model.Product
}

// Loading returns the initial state.
func Loading() State { return State{kind: KindLoading} }

// Kind returns the active variant.
func (s State) Kind() Kind { return s.kind }

// Message returns the error text; empty unless the state is Error.
func (s State) Message() string { return s.message }

// Products returns the loaded window; nil unless the state is Ready.
func (s State) Products() []model.Product {
	if s.kind != KindReady {
		return nil
	}
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Resolve applies the outcome of the load. Only Loading can be resolved.
// Products beyond MaxCards are dropped.
func (s State) Resolve(products []model.Product, err error) (State, error) {
	if s.kind != KindLoading {
		return s, ErrIllegalTransition
	}
	if err != nil {
		return State{kind: KindError, message: catalog.FailureMessage}, nil
	}
	if len(products) > MaxCards {
		products = products[:MaxCards]
	}
	kept := make([]model.Product, len(products))
	copy(kept, products)
	return State{kind: KindReady, products: kept}, nil
}
