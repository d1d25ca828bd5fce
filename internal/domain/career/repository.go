package career

import "context"

type CareerRepository interface {
	Load(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, ledger Ledger) (Ledger, error)
}
