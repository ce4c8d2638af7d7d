package domain

// Category is static reference data, pre-seeded and never mutated at runtime.
type Category struct {
	ID    int
	Name  string
	Icon  string
	Color string
}
