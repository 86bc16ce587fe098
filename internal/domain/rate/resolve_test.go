package rate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, effective, amount string, endDate *string) StyleRate {
	return StyleRate{
		ID:             id,
		StyleID:        "style-1",
		OrganizationID: "org-1",
		Rate:           decimal.RequireFromString(amount),
		EffectiveDate:  effective,
		EndDate:        endDate,
	}
}

func TestResolve_PicksLatestEffectiveDateNotAfterTarget(t *testing.T) {
	rates := []StyleRate{
		rec("a", "2024-01-01", "2.00", nil),
		rec("b", "2024-03-01", "2.50", nil),
		rec("c", "2024-06-01", "3.00", nil),
	}

	got, err := Resolve(rates, "2024-03-15", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("2.50")))

	// Exactly on an effective date: that rate applies.
	got, err = Resolve(rates, "2024-03-01", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)

	// Before everything: no rate.
	_, err = Resolve(rates, "2023-12-31", ResolveOptions{})
	assert.ErrorIs(t, err, ErrNoApplicableRate)
}

func TestResolve_EmptyRateSet(t *testing.T) {
	_, err := Resolve(nil, "2024-01-01", ResolveOptions{})
	assert.ErrorIs(t, err, ErrNoApplicableRate)
}

func TestResolve_TieBreakMostRecentlyInsertedWins(t *testing.T) {
	// Two records share the effective date; UUIDv7-style IDs sort by
	// insertion time, so the greater ID must win.
	rates := []StyleRate{
		rec("0191aaaa-0000-7000-8000-000000000001", "2024-01-01", "3.00", nil),
		rec("0191aaaa-0000-7000-8000-000000000002", "2024-01-01", "3.10", nil),
	}

	got, err := Resolve(rates, "2024-01-15", ResolveOptions{})
	require.NoError(t, err)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("3.10")))

	// Same answer regardless of input order.
	reversed := []StyleRate{rates[1], rates[0]}
	got2, err := Resolve(reversed, "2024-01-15", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, got.ID, got2.ID)
}

func TestResolve_Deterministic(t *testing.T) {
	rates := []StyleRate{
		rec("b", "2024-01-01", "3.10", nil),
		rec("a", "2024-01-01", "3.00", nil),
		rec("c", "2023-06-01", "2.80", nil),
	}

	first, err := Resolve(rates, "2024-02-01", ResolveOptions{})
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Resolve(rates, "2024-02-01", ResolveOptions{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_EndDateIgnoredByDefault(t *testing.T) {
	end := "2024-01-31"
	rates := []StyleRate{
		rec("a", "2024-01-01", "2.00", &end),
		rec("b", "2024-04-01", "2.50", nil),
	}

	// 2024-02-15 is after a's end date but before b starts. Legacy behavior:
	// a still applies.
	got, err := Resolve(rates, "2024-02-15", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestResolve_EnforceEndDateExcludesLapsedRates(t *testing.T) {
	end := "2024-01-31"
	rates := []StyleRate{
		rec("a", "2024-01-01", "2.00", &end),
		rec("b", "2024-04-01", "2.50", nil),
	}

	_, err := Resolve(rates, "2024-02-15", ResolveOptions{EnforceEndDate: true})
	assert.ErrorIs(t, err, ErrNoApplicableRate)

	// Within the window the rate still resolves.
	got, err := Resolve(rates, "2024-01-20", ResolveOptions{EnforceEndDate: true})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}
