package animal

import "github.com/angeloszaimis/handler-chain/internal/chain"

const Nut = "Nut"

type Squirrel struct {
	chain.Link[string, string]
}

func (s *Squirrel) Name() string {
	return "Squirrel"
}

func (s *Squirrel) Handle(food string) (string, bool) {
	if food == Nut {
		return eat(s.Name(), food), true
	}
	return chain.Forward[string, string](s, food)
}

func NewSquirrel() *Squirrel {
	return &Squirrel{}
}
