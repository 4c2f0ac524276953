package lop

// Optional defines an interface for types that collapse to a two-state value
type Optional[T any] interface {
	// ToOption normalizes the container to present/absent. Total: it
	// never fails and has no side effects.
	ToOption() Option[T]
}

// Faulty extends Optional with a retained failure payload
type Faulty[T any] interface {
	Optional[T]
	// Err returns the error if operation failed
	Err() error
}
