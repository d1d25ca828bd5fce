package leave

import "context"

type LeaveRepository interface {
	Load(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, ledger Ledger) (Ledger, error)
}
