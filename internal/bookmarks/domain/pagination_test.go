package domain_test

import (
	"math"
	"testing"

	"markfy/internal/bookmarks/domain"

	"github.com/stretchr/testify/assert"
)

// TestNewPagination_MiddlePage_BothDirections verifies a middle page has both links
func TestNewPagination_MiddlePage_BothDirections(t *testing.T) {
	p := domain.NewPagination(2, 10, 35)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 35, p.Total)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

// TestNewPagination_LastPartialPage_NoNext covers the 25-records/page-3 scenario
func TestNewPagination_LastPartialPage_NoNext(t *testing.T) {
	p := domain.NewPagination(3, 10, 25)

	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

// TestNewPagination_EmptyResult_ZeroPages verifies total = 0 edge behavior
func TestNewPagination_EmptyResult_ZeroPages(t *testing.T) {
	p := domain.NewPagination(1, 10, 0)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

// TestNewPagination_ExactMultiple_NoPartialPage verifies ceil on exact division
func TestNewPagination_ExactMultiple_NoPartialPage(t *testing.T) {
	p := domain.NewPagination(1, 10, 30)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

// TestNewPagination_Identities_HoldAcrossInputs checks the metadata identities
// against an independent computation for a spread of inputs
func TestNewPagination_Identities_HoldAcrossInputs(t *testing.T) {
	for _, tc := range []struct{ page, limit, total int }{
		{1, 1, 0}, {1, 1, 1}, {2, 5, 11}, {3, 10, 25}, {5, 100, 499}, {7, 3, 21},
	} {
		p := domain.NewPagination(tc.page, tc.limit, tc.total)

		wantPages := int(math.Ceil(float64(tc.total) / float64(tc.limit)))
		assert.Equal(t, wantPages, p.TotalPages, "totalPages for %+v", tc)
		assert.Equal(t, tc.page < wantPages, p.HasNext, "hasNext for %+v", tc)
		assert.Equal(t, tc.page > 1, p.HasPrev, "hasPrev for %+v", tc)
	}
}
