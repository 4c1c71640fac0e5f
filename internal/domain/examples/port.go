package examples

import "context"

// Repository port (interface untuk the example catalog)
type Repository interface {
	List(ctx context.Context) ([]*Example, error)
	Get(ctx context.Context, id ExampleID) (*Example, error)
}
