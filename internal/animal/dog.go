package animal

import "github.com/angeloszaimis/handler-chain/internal/chain"

const MeatBall = "MeatBall"

type Dog struct {
	chain.Link[string, string]
}

func (d *Dog) Name() string {
	return "Dog"
}

func (d *Dog) Handle(food string) (string, bool) {
	if food == MeatBall {
		return eat(d.Name(), food), true
	}
	return chain.Forward[string, string](d, food)
}

func NewDog() *Dog {
	return &Dog{}
}
