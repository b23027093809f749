package scheduler

import (
	"testing"

	"github.com/alexanderramin/linework/internal/contract"
	"github.com/alexanderramin/linework/internal/domain"
	"github.com/alexanderramin/linework/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_EvenSplit(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S1", "P1", "WR-1"),
		testutil.NewTestItem("S1", "P2", "WR-2"),
	}

	diags := AllocateQuantities(items, map[string]float64{"S1": 100})

	assert.Empty(t, diags)
	assert.Equal(t, 50.0, items[0].QuantityValue())
	assert.Equal(t, 50.0, items[1].QuantityValue())
}

func TestAllocate_RemainderAfterAssigned(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S1", "P1", "WR-1", testutil.WithItemQuantity(70)),
		testutil.NewTestItem("S1", "P2", "WR-2"),
	}

	diags := AllocateQuantities(items, map[string]float64{"S1": 100})

	assert.Empty(t, diags)
	assert.Equal(t, 70.0, items[0].QuantityValue(), "assigned quantity untouched")
	assert.Equal(t, 30.0, items[1].QuantityValue())
}

func TestAllocate_NoUnassigned_NoChange(t *testing.T) {
	// Already-assigned quantities exceeding the scope total are left alone.
	items := []*domain.WorkItem{
		testutil.NewTestItem("S2", "P1", "WR-1", testutil.WithItemQuantity(6)),
		testutil.NewTestItem("S2", "P2", "WR-2", testutil.WithItemQuantity(6)),
	}

	diags := AllocateQuantities(items, map[string]float64{"S2": 10})

	assert.Empty(t, diags)
	assert.Equal(t, 6.0, items[0].QuantityValue())
	assert.Equal(t, 6.0, items[1].QuantityValue())
}

func TestAllocate_CeilRoundsEveryShareUp(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S1", "P1", "WR-1"),
		testutil.NewTestItem("S1", "P2", "WR-2"),
		testutil.NewTestItem("S1", "P3", "WR-3"),
	}

	AllocateQuantities(items, map[string]float64{"S1": 100})

	// ceil(100/3) = 34 for every item; the scope overshoots by 2 units.
	for _, it := range items {
		assert.Equal(t, 34.0, it.QuantityValue())
	}
}

func TestAllocate_MissingTotal_GapWarning(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S9", "P1", "WR-1"),
		testutil.NewTestItem("S9", "P2", "WR-2"),
	}

	diags := AllocateQuantities(items, map[string]float64{})

	require.Len(t, diags, 1)
	assert.Equal(t, contract.SeverityWarning, diags[0].Severity)
	assert.Equal(t, contract.DiagAllocationGap, diags[0].Code)
	assert.Equal(t, "S9", diags[0].ScopeID)

	for _, it := range items {
		require.NotNil(t, it.Quantity)
		assert.Equal(t, 0.0, *it.Quantity)
	}
}

func TestAllocate_ZeroTotal_GapWarning(t *testing.T) {
	items := []*domain.WorkItem{testutil.NewTestItem("S1", "P1", "WR-1")}

	diags := AllocateQuantities(items, map[string]float64{"S1": 0})

	require.Len(t, diags, 1)
	assert.Equal(t, contract.DiagAllocationGap, diags[0].Code)
	assert.Equal(t, 0.0, items[0].QuantityValue())
}

func TestAllocate_NegativeRemainder_ZeroFill(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S1", "P1", "WR-1", testutil.WithItemQuantity(120)),
		testutil.NewTestItem("S1", "P2", "WR-2"),
		testutil.NewTestItem("S1", "P3", "WR-3"),
	}

	diags := AllocateQuantities(items, map[string]float64{"S1": 100})

	// Nothing left to allocate, but never go negative.
	assert.Empty(t, diags)
	assert.Equal(t, 0.0, items[1].QuantityValue())
	assert.Equal(t, 0.0, items[2].QuantityValue())
}

func TestAllocate_ScopesIndependent(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S1", "P1", "WR-1"),
		testutil.NewTestItem("S2", "P1", "WR-2"),
		testutil.NewTestItem("S1", "P2", "WR-3"),
	}

	diags := AllocateQuantities(items, map[string]float64{"S1": 40, "S2": 9})

	assert.Empty(t, diags)
	assert.Equal(t, 20.0, items[0].QuantityValue())
	assert.Equal(t, 9.0, items[1].QuantityValue())
	assert.Equal(t, 20.0, items[2].QuantityValue())
}

func TestAllocate_Idempotent(t *testing.T) {
	items := []*domain.WorkItem{
		testutil.NewTestItem("S1", "P1", "WR-1"),
		testutil.NewTestItem("S1", "P2", "WR-2", testutil.WithItemQuantity(30)),
		testutil.NewTestItem("S3", "P1", "WR-3"),
	}
	totals := map[string]float64{"S1": 100}

	AllocateQuantities(items, totals)
	first := []float64{items[0].QuantityValue(), items[1].QuantityValue(), items[2].QuantityValue()}

	diags := AllocateQuantities(items, totals)

	assert.Empty(t, diags, "second pass has no unassigned items, so no gap to report")
	for i, it := range items {
		assert.Equal(t, first[i], it.QuantityValue(), "item %d changed on second pass", i)
	}
}

func TestAllocate_NoItems(t *testing.T) {
	diags := AllocateQuantities(nil, map[string]float64{"S1": 100})
	assert.Empty(t, diags)
}
