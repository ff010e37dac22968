package server

import (
	"net/http/httptest"
	"testing"

	"github.com/kasuboski/streamportal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    pagination.Params
		wantErr bool
	}{
		{name: "defaults", query: "", want: pagination.Params{Page: 1, PageSize: 0}},
		{name: "page and size", query: "?page=3&pageSize=10", want: pagination.Params{Page: 3, PageSize: 10}},
		{name: "zero page", query: "?page=0", wantErr: true},
		{name: "negative size", query: "?pageSize=-1", wantErr: true},
		{name: "not a number", query: "?page=abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/search"+tt.query, nil)
			got, err := ParsePaginationParams(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
