package careers

import "context"

// Repo defines read access to the career catalog.
// List must return careers in stable catalog order on every call.
type Repo interface {
	List(ctx context.Context) ([]Career, error)
}
