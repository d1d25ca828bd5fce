package attendance

import "context"

type AttendanceRepository interface {
	Load(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, ledger Ledger) (Ledger, error)
}
