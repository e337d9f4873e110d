package handlers

// Result tells a handler chain whether to keep going
type Result int

const (
	// Continue passes the event on to the next handler
	Continue Result = iota
	// Stop marks the event handled; later handlers are skipped
	Stop
)

// Handler handles one event of type E
type Handler[E any] func(E) Result

// Compose returns a handler that invokes hs in order and stops at the first
// one returning Stop. Nil handlers are skipped.
func Compose[E any](hs ...Handler[E]) Handler[E] {
	chain := make([]Handler[E], 0, len(hs))
	for _, h := range hs {
		if h != nil {
			chain = append(chain, h)
		}
	}
	return func(e E) Result {
		for _, h := range chain {
			if h(e) == Stop {
				return Stop
			}
		}
		return Continue
	}
}
