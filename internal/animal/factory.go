package animal

import (
	"errors"
	"fmt"
)

const (
	KindMonkey   = "monkey"
	KindSquirrel = "squirrel"
	KindDog      = "dog"
	KindEater    = "eater"
)

var (
	ErrUnknownKind = errors.New("animal: unknown kind")
	ErrNoFoods     = errors.New("animal: eater needs a name and at least one food")
)

// Spec describes one animal in a chain. Name and Foods are only read for
// KindEater.
type Spec struct {
	Kind  string
	Name  string
	Foods []string
}

func Kinds() []string {
	return []string{KindMonkey, KindSquirrel, KindDog, KindEater}
}

func New(spec Spec) (Handler, error) {
	switch spec.Kind {
	case KindMonkey:
		return NewMonkey(), nil
	case KindSquirrel:
		return NewSquirrel(), nil
	case KindDog:
		return NewDog(), nil
	case KindEater:
		if spec.Name == "" || len(spec.Foods) == 0 {
			return nil, ErrNoFoods
		}
		return NewEater(spec.Name, spec.Foods...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}

// NewAll builds one handler per spec, keeping the order.
func NewAll(specs []Spec) ([]Handler, error) {
	handlers := make([]Handler, 0, len(specs))

	for i, spec := range specs {
		h, err := New(spec)
		if err != nil {
			return nil, fmt.Errorf("animal %d: %w", i, err)
		}
		handlers = append(handlers, h)
	}

	return handlers, nil
}
