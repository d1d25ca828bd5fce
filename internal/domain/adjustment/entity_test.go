package adjustment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdditive(t *testing.T) {
	assert.True(t, IsAdditive(TypeBonus))
	assert.True(t, IsAdditive(TypeHousingAllowance))
	assert.True(t, IsAdditive(TypeTransportAllowance))
	assert.False(t, IsAdditive(TypeDeduction))
	assert.False(t, IsAdditive(TypeAdvance))
}

func TestSum_PartitionCoversEveryAmount(t *testing.T) {
	var all []Adjustment
	total := decimal.Zero
	for i, typ := range TypeValues {
		amount := decimal.NewFromInt(int64(100 * (i + 1)))
		all = append(all, Adjustment{ID: typ, EmployeeID: "e1", Type: Type(typ), Amount: amount, Date: "2024-01-10"})
		total = total.Add(amount)
	}

	got := Sum(all)
	assert.True(t, got.Bonuses.Add(got.Deductions).Equal(total))
	assert.True(t, got.Bonuses.Equal(decimal.NewFromInt(100+400+500)))
	assert.True(t, got.Deductions.Equal(decimal.NewFromInt(200+300)))
	assert.True(t, got.Net().Equal(decimal.NewFromInt(500)))
}

func TestLedger_SoftDelete(t *testing.T) {
	l := NewLedger([]Adjustment{
		{ID: "a1", EmployeeID: "e1", Type: TypeBonus, Amount: decimal.NewFromInt(500), Date: "2024-01-10"},
		{ID: "a2", EmployeeID: "e1", Type: TypeAdvance, Amount: decimal.NewFromInt(200), Date: "2024-01-12"},
		{ID: "a3", EmployeeID: "e2", Type: TypeBonus, Amount: decimal.NewFromInt(50), Date: "2024-01-12"},
	}, 1)

	l, err := l.SoftDelete("a2", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Len(t, l.All(), 3)
	assert.Len(t, l.Active(), 2)
	_, ok := l.Get("a2")
	assert.False(t, ok)

	s := l.Summary("e1")
	assert.True(t, s.Bonuses.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.Deductions.IsZero())

	_, err = l.SoftDelete("a2", time.Now())
	assert.ErrorIs(t, err, ErrAdjustmentNotFound)
}
