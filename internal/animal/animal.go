package animal

import (
	"fmt"

	"github.com/angeloszaimis/handler-chain/internal/chain"
)

// Handler is a chain node that takes food names and answers with who ate them.
type Handler = chain.Handler[string, string]

// Named is implemented by every animal in this package.
type Named interface {
	Name() string
}

func eat(name, food string) string {
	return fmt.Sprintf("%s: I'll eat the %s", name, food)
}
