package employee

import "context"

// EmployeeRepository loads and saves the whole employees ledger.
type EmployeeRepository interface {
	Load(ctx context.Context) (Roster, error)
	Save(ctx context.Context, roster Roster) (Roster, error)
}
