package shift

import "context"

type ShiftRepository interface {
	Load(ctx context.Context) (Catalog, error)
	Save(ctx context.Context, catalog Catalog) (Catalog, error)
}
