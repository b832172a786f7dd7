package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest_Normalize(t *testing.T) {
	p := PaginatedRequest{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)

	p = PaginatedRequest{Page: 3, PerPage: 500}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestPaginatedRequest_Offset(t *testing.T) {
	p := PaginatedRequest{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}
