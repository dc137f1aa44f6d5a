package fitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupByName(t *testing.T) {
	tests := []struct {
		name     string
		filters  []Property
		expected map[string][]string
	}{
		{
			name: "one value per name",
			filters: []Property{
				{Name: "Year", Value: "2014"},
				{Name: "Make", Value: "Ram"},
			},
			expected: map[string][]string{
				"Year": {"2014"},
				"Make": {"Ram"},
			},
		},
		{
			name: "repeated name keeps input order",
			filters: []Property{
				{Name: "Year", Value: "2020"},
				{Name: "Make", Value: "Ram"},
				{Name: "Year", Value: "2014"},
			},
			expected: map[string][]string{
				"Year": {"2020", "2014"},
				"Make": {"Ram"},
			},
		},
		{
			name: "duplicate values are not collapsed",
			filters: []Property{
				{Name: "Year", Value: "2014"},
				{Name: "Year", Value: "2014"},
			},
			expected: map[string][]string{
				"Year": {"2014", "2014"},
			},
		},
		{
			name: "empty names dropped from the group",
			filters: []Property{
				{Name: "", Value: "stray"},
				{Name: "Make", Value: "Ram"},
			},
			expected: map[string][]string{
				"Make": {"Ram"},
			},
		},
		{
			name:     "no filters",
			filters:  nil,
			expected: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GroupByName(tt.filters))
		})
	}
}

func TestBranchesSingleCall(t *testing.T) {
	filters := []Property{
		{Name: "Year", Value: "2014"},
		{Name: "Make", Value: "Ram"},
		{Name: "", Value: "kept for upstream"},
	}

	q := Normalize(filters, "Year")

	assert.False(t, q.FannedOut())
	branches := q.Branches()
	assert.Len(t, branches, 1)
	// The single branch carries the caller's filters verbatim, empty-named
	// entries included; upstream is authoritative for rejecting them.
	assert.Equal(t, filters, branches[0])
}

func TestBranchesFanOut(t *testing.T) {
	filters := []Property{
		{Name: "Year", Value: "2014"},
		{Name: "Year", Value: "2020"},
		{Name: "Make", Value: "Ram"},
		{Name: "Model", Value: "1500"},
	}

	q := Normalize(filters, "Year")

	assert.True(t, q.FannedOut())
	assert.Equal(t, []string{"2014", "2020"}, q.FanValues)

	branches := q.Branches()
	assert.Len(t, branches, 2)
	assert.Equal(t, []Property{
		{Name: "Make", Value: "Ram"},
		{Name: "Model", Value: "1500"},
		{Name: "Year", Value: "2014"},
	}, branches[0])
	assert.Equal(t, []Property{
		{Name: "Make", Value: "Ram"},
		{Name: "Model", Value: "1500"},
		{Name: "Year", Value: "2020"},
	}, branches[1])
}

func TestBranchesFanOutDifferentDimension(t *testing.T) {
	filters := []Property{
		{Name: "Model", Value: "Civic"},
		{Name: "Model", Value: "Accord"},
		{Name: "Year", Value: "2019"},
	}

	q := Normalize(filters, "Model")

	branches := q.Branches()
	assert.Len(t, branches, 2)
	assert.Equal(t, []Property{
		{Name: "Year", Value: "2019"},
		{Name: "Model", Value: "Civic"},
	}, branches[0])
	assert.Equal(t, []Property{
		{Name: "Year", Value: "2019"},
		{Name: "Model", Value: "Accord"},
	}, branches[1])
}

func TestBranchesEmptyFilters(t *testing.T) {
	q := Normalize(nil, "Year")

	assert.False(t, q.FannedOut())
	branches := q.Branches()
	assert.Len(t, branches, 1)
	assert.Empty(t, branches[0])
}

func TestRecordValue(t *testing.T) {
	r := Record{Details: []Property{
		{Name: "Engine", Value: "5.7L V8"},
		{Name: "Notes", Value: ""},
	}}

	v, ok := r.Value("Engine")
	assert.True(t, ok)
	assert.Equal(t, "5.7L V8", v)

	// Present with an empty value is still present.
	v, ok = r.Value("Notes")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = r.Value("Trim")
	assert.False(t, ok)
}

func TestBaseValue(t *testing.T) {
	filters := []Property{
		{Name: "Year", Value: "2014"},
		{Name: "Year", Value: "2020"},
		{Name: "Make", Value: "Ram"},
	}

	assert.Equal(t, "2014", BaseValue(filters, "Year"))
	assert.Equal(t, "Ram", BaseValue(filters, "Make"))
	assert.Equal(t, "", BaseValue(filters, "Trim"))
}

func TestMerge(t *testing.T) {
	ram1500 := Record{Details: []Property{{Name: "Model", Value: "1500"}}}
	ram2500 := Record{Details: []Property{{Name: "Model", Value: "2500"}}}
	ram3500 := Record{Details: []Property{{Name: "Model", Value: "3500"}}}

	tests := []struct {
		name     string
		branches [][]Record
		expected []Record
	}{
		{
			name:     "branch order then intra-branch order",
			branches: [][]Record{{ram2500, ram3500}, {ram1500}},
			expected: []Record{ram2500, ram3500, ram1500},
		},
		{
			name:     "identical records across branches are kept",
			branches: [][]Record{{ram1500}, {ram1500}},
			expected: []Record{ram1500, ram1500},
		},
		{
			name:     "empty branches contribute nothing",
			branches: [][]Record{{}, {ram1500}, nil},
			expected: []Record{ram1500},
		},
		{
			name:     "no branches",
			branches: nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.branches))
		})
	}
}
