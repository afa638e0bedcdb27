package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

func TestProductIsLow_Boundary(t *testing.T) {
	cases := []struct {
		name     string
		stock    int64
		minStock int64
		want     bool
	}{
		{"below threshold", 2, 5, true},
		{"exactly at threshold", 5, 5, true},
		{"one above threshold", 6, 5, false},
		{"zero stock zero threshold", 0, 0, true},
		{"zero threshold with stock", 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{Stock: tc.stock, MinStock: tc.minStock}
			assert.Equal(t, tc.want, p.IsLow())
		})
	}
}
