package animal

import "github.com/angeloszaimis/handler-chain/internal/chain"

const Banana = "Banana"

type Monkey struct {
	chain.Link[string, string]
}

func (m *Monkey) Name() string {
	return "Monkey"
}

func (m *Monkey) Handle(food string) (string, bool) {
	if food == Banana {
		return eat(m.Name(), food), true
	}
	return chain.Forward[string, string](m, food)
}

func NewMonkey() *Monkey {
	return &Monkey{}
}
