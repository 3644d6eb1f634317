package ports

// Stylesheet is a live, ordered list of CSS rules addressed by index.
// Inserting or deleting a rule shifts the indices of every rule after it.
//
//go:generate go run go.uber.org/mock/mockgen -source=stylesheet.go -destination=mocks/mock_stylesheet.go -package=mocks
type Stylesheet interface {
	// InsertRule inserts rule at index and returns the index it was installed at.
	InsertRule(rule string, index int) (int, error)

	// DeleteRule removes the rule at index.
	DeleteRule(index int) error
}
