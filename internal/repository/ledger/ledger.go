// Package ledger persists each domain ledger as one JSON blob under its
// store key. Every save replaces the whole collection and is guarded by the
// version loaded with it.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
)

func loadItems[T any](ctx context.Context, st store.Store, key string) ([]T, int64, error) {
	data, version, err := st.Load(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("load %s: %w", key, err)
	}

	var items []T
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return items, version, nil
}

func saveItems[T any](ctx context.Context, st store.Store, key string, items []T, version int64) (int64, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return version, fmt.Errorf("encode %s: %w", key, err)
	}
	next, err := st.Save(ctx, key, data, version)
	if err != nil {
		return next, fmt.Errorf("save %s: %w", key, err)
	}
	return next, nil
}
