package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymap/internal/category"
)

func TestParseTaxonomy_PreservesOrder(t *testing.T) {
	data := []byte(`{"Zeta": {"B": ["z1", "z2"], "A": ["z3"]}, "Alpha": {"C": ["a1"]}}`)

	tax, err := category.ParseTaxonomy(data)
	require.NoError(t, err)

	got := tax.Flatten()
	want := []category.Category{
		{ID: 0, Level1: "Zeta", Level2: "B", Level3: "z1"},
		{ID: 1, Level1: "Zeta", Level2: "B", Level3: "z2"},
		{ID: 2, Level1: "Zeta", Level2: "A", Level3: "z3"},
		{ID: 3, Level1: "Alpha", Level2: "C", Level3: "a1"},
	}
	assert.Equal(t, want, got)
}

func TestParseTaxonomy_YAML(t *testing.T) {
	data := []byte("Einnahmen:\n  Hauptjob:\n    - Gehalt\n    - Bonuse\n")

	tax, err := category.ParseTaxonomy(data)
	require.NoError(t, err)

	cats := tax.Flatten()
	require.Len(t, cats, 2)
	assert.Equal(t, "Bonuse", cats[1].Level3)
}

func TestParseTaxonomy_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Empty", data: ""},
		{name: "NotAMapping", data: `["a", "b"]`},
		{name: "FlatGroup", data: `{"Einnahmen": ["Gehalt"]}`},
		{name: "LeavesNotAList", data: `{"Einnahmen": {"Hauptjob": {"x": 1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := category.ParseTaxonomy([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDefaultTaxonomy(t *testing.T) {
	tax, err := category.DefaultTaxonomy()
	require.NoError(t, err)

	cats := tax.Flatten()
	require.Len(t, cats, 66)

	assert.Equal(t, category.Category{ID: 0, Level1: "Einnahmen", Level2: "Hauptjob", Level3: "Gehalt"}, cats[0])
	assert.Equal(t, "Umlagerungen", cats[len(cats)-1].Level3)

	for i, c := range cats {
		assert.Equal(t, i, c.ID)
	}
}

func TestLevelOptions(t *testing.T) {
	tax, err := category.DefaultTaxonomy()
	require.NoError(t, err)

	cats := tax.Flatten()

	assert.Equal(t, []string{"Einnahmen", "Fixe Ausgaben", "Variable Ausgaben"}, category.Level1Options(cats))
	assert.Equal(t, []string{"Hauptjob", "Nebenjob", "Staat", "Privat", "Sonstiges"}, category.Level2Options(cats, "Einnahmen"))

	leaves := category.Level3Options(cats, "Einnahmen", "Privat")
	require.Len(t, leaves, 2)
	assert.Equal(t, "Verkauf von Gegenstand", leaves[0].Level3)
	assert.Equal(t, "Kindergeld", leaves[1].Level3)
}
