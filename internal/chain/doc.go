// Package chain implements a generic chain of responsibility.
//
// A chain is a list of handlers joined by successor links. A request enters
// at the head and travels along the links until one handler accepts it; the
// first handler to accept wins and nothing after it runs. A request no
// handler accepts comes back as (zero, false), which is a normal outcome and
// not an error.
//
// Handlers embed Link to get successor management and implement Handle:
//
//	type monkey struct {
//	    chain.Link[string, string]
//	}
//
//	func (m *monkey) Handle(req string) (string, bool) {
//	    if req == "Banana" {
//	        return "Monkey: I'll eat the " + req, true
//	    }
//	    return chain.Forward[string, string](m, req)
//	}
//
// Links may be changed (last write wins) until the chain is frozen. Links
// that would close a cycle are rejected.
package chain
