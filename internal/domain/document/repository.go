package document

import "context"

type DocumentRepository interface {
	Load(ctx context.Context) (Ledger, error)
	Save(ctx context.Context, ledger Ledger) (Ledger, error)
}
