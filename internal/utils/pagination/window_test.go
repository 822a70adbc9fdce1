package pagination_test

import (
	"testing"

	"github.com/peoplenest/payroll-backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		page     int
		wantPage int
		wantSkip int
	}{
		{name: "first page has no cursor", limit: 10, page: 1, wantPage: 1, wantSkip: 0},
		{name: "second page skips one window", limit: 10, page: 2, wantPage: 2, wantSkip: 10},
		{name: "deep page", limit: 25, page: 5, wantPage: 5, wantSkip: 100},
		{name: "zero page clamps to one", limit: 10, page: 0, wantPage: 1, wantSkip: 0},
		{name: "negative page clamps to one", limit: 10, page: -3, wantPage: 1, wantSkip: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotPage, gotSkip := pagination.Window(tc.limit, tc.page)
			assert.Equal(t, tc.wantPage, gotPage)
			assert.Equal(t, tc.wantSkip, gotSkip)
		})
	}
}
