package deal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByStage(t *testing.T) {
	deals := []Deal{
		{Title: "A", Stage: StageNew, Value: 100},
		{Title: "B", Stage: StageNew, Value: 250},
		{Title: "C", Stage: StageClosedWon, Value: 1000},
		{Title: "D", Stage: "archived", Value: 9999}, // not a board stage
	}

	columns := GroupByStage(deals)
	require.Len(t, columns, len(StageOrder))

	for i, stage := range StageOrder {
		assert.Equal(t, stage, columns[i].Stage)
		assert.NotNil(t, columns[i].Deals)
	}

	assert.Len(t, columns[0].Deals, 2)
	assert.Equal(t, 350.0, columns[0].TotalValue)

	wonIdx := len(StageOrder) - 2
	assert.Len(t, columns[wonIdx].Deals, 1)
	assert.Equal(t, 1000.0, columns[wonIdx].TotalValue)

	// The unknown-stage deal shows up in no column.
	total := 0
	for _, col := range columns {
		total += len(col.Deals)
	}
	assert.Equal(t, 3, total)
}

func TestGroupByStageEmpty(t *testing.T) {
	columns := GroupByStage(nil)
	require.Len(t, columns, len(StageOrder))
	for _, col := range columns {
		assert.Empty(t, col.Deals)
		assert.Zero(t, col.TotalValue)
	}
}

func TestSearchFilter(t *testing.T) {
	deals := []Deal{
		{Title: "Annual license renewal", Description: "Contoso yearly"},
		{Title: "Pilot project", Description: "warehouse AUTOMATION"},
		{Title: "Support upgrade"},
	}

	tests := []struct {
		name    string
		query   string
		wantLen int
	}{
		{"empty query keeps all", "", 3},
		{"title match", "license", 1},
		{"description match is case insensitive", "automation", 1},
		{"no match", "fleet", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchFilter(deals, tt.query)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
