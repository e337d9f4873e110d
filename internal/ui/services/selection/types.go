package selection

// State holds the ordered selected items
type State[T any] struct {
	Items []T
}
