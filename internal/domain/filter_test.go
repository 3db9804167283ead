package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByReference(t *testing.T) {
	outages := []Outage{
		{Location: "Foxford Road", Reference: strPtr("MAY00102991")},
		{Location: "Main Street", Reference: strPtr("COR00098700")},
		{Location: "Quay Road"},
	}

	t.Run("keeps exact matches", func(t *testing.T) {
		got := FilterByReference(outages, "COR00098700")
		require.Len(t, got, 1)
		assert.Equal(t, "Main Street", got[0].Location)
	})

	t.Run("empty ref is a no-op", func(t *testing.T) {
		assert.Equal(t, outages, FilterByReference(outages, ""))
	})

	t.Run("no match yields empty set", func(t *testing.T) {
		assert.Empty(t, FilterByReference(outages, "GAL00000001"))
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		assert.Empty(t, FilterByReference(outages, "cor00098700"))
	})
}

func TestFilterByLocation(t *testing.T) {
	outages := []Outage{
		{Location: "Foxford Road", County: "Mayo", Description: "Burst main near Ballina."},
		{Location: "Patrick Street", County: "Cork", Description: "Scheduled works."},
	}

	t.Run("matches location", func(t *testing.T) {
		got := FilterByLocation(outages, "foxford")
		require.Len(t, got, 1)
		assert.Equal(t, "Foxford Road", got[0].Location)
	})

	t.Run("matches county through combined string", func(t *testing.T) {
		got := FilterByLocation(outages, "mayo")
		require.Len(t, got, 1)
		assert.Equal(t, "Foxford Road", got[0].Location)
	})

	t.Run("matches description", func(t *testing.T) {
		got := FilterByLocation(outages, "ballina")
		require.Len(t, got, 1)
		assert.Equal(t, "Foxford Road", got[0].Location)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FilterByLocation(outages, "PATRICK")
		require.Len(t, got, 1)
		assert.Equal(t, "Patrick Street", got[0].Location)
	})

	t.Run("empty needle is a no-op", func(t *testing.T) {
		assert.Equal(t, outages, FilterByLocation(outages, ""))
	})

	t.Run("no match yields empty set", func(t *testing.T) {
		assert.Empty(t, FilterByLocation(outages, "galway"))
	})
}

func TestApplyFilters_Commute(t *testing.T) {
	outages := []Outage{
		{Location: "Foxford Road", County: "Mayo", Reference: strPtr("MAY00102991")},
		{Location: "Quay Road", County: "Mayo", Reference: strPtr("MAY00200000")},
		{Location: "Patrick Street", County: "Cork", Reference: strPtr("MAY00102991")},
		{Location: "Main Street", County: "Cork"},
	}

	refThenLoc := FilterByLocation(FilterByReference(outages, "MAY00102991"), "mayo")
	locThenRef := FilterByReference(FilterByLocation(outages, "mayo"), "MAY00102991")

	assert.Equal(t, refThenLoc, locThenRef)
	assert.Equal(t, refThenLoc, ApplyFilters(outages, "MAY00102991", "mayo"))
	require.Len(t, refThenLoc, 1)
	assert.Equal(t, "Foxford Road", refThenLoc[0].Location)
}
