package adjustment

import "context"

type AdjustmentRepository interface {
	Load(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, ledger Ledger) (Ledger, error)
}
