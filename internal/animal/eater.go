package animal

import "github.com/angeloszaimis/handler-chain/internal/chain"

// Eater is an animal defined by configuration rather than by code.
type Eater struct {
	chain.Link[string, string]
	name  string
	foods map[string]struct{}
}

func (e *Eater) Name() string {
	return e.name
}

func (e *Eater) Handle(food string) (string, bool) {
	if _, ok := e.foods[food]; ok {
		return eat(e.name, food), true
	}
	return chain.Forward[string, string](e, food)
}

// Eats reports whether the eater accepts food.
func (e *Eater) Eats(food string) bool {
	_, ok := e.foods[food]
	return ok
}

func NewEater(name string, foods ...string) *Eater {
	set := make(map[string]struct{}, len(foods))
	for _, f := range foods {
		set[f] = struct{}{}
	}

	return &Eater{
		name:  name,
		foods: set,
	}
}
