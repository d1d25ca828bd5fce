package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LoadMissing(t *testing.T) {
	s := NewMemoryStore()

	_, version, err := s.Load(context.Background(), KeyEmployees)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, version)
}

func TestMemoryStore_SaveBumpsVersion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v, err := s.Save(ctx, KeyShifts, []byte(`[]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = s.Save(ctx, KeyShifts, []byte(`[{"id":"a"}]`), v)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	data, version, err := s.Load(ctx, KeyShifts)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.JSONEq(t, `[{"id":"a"}]`, string(data))
}

func TestMemoryStore_StaleVersionRejected(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Save(ctx, KeyLeaves, []byte(`[]`), 0)
	require.NoError(t, err)

	_, err = s.Save(ctx, KeyLeaves, []byte(`[1]`), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	data, _, err := s.Load(ctx, KeyLeaves)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestLocker_SerializesSameKey(t *testing.T) {
	locker := NewLocker()
	counter := 0
	done := make(chan struct{})

	for i := 0; i < 50; i++ {
		go func() {
			unlock := locker.Lock(KeyEmployees, KeyShifts)
			counter++
			unlock()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	assert.Equal(t, 50, counter)
}

func TestLocker_DuplicateKeys(t *testing.T) {
	locker := NewLocker()

	unlock := locker.Lock(KeyShifts, KeyShifts)
	unlock()

	unlock = locker.Lock(KeyShifts)
	unlock()
}
