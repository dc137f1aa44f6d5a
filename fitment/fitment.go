// Package fitment models vehicle-compatibility lookups: the property
// filters a caller supplies, the fitment records the marketplace reports
// back, and the fan-out plan used when one filter dimension carries
// several values.
package fitment

// Property is one named value. Callers send properties as filters; the
// marketplace returns the same shape as the details of a matched record.
type Property struct {
	Name  string `json:"propertyName"`
	Value string `json:"propertyValue"`
}

// Record is one vehicle fitment reported by the marketplace. Any subset of
// the known property names (Year, Make, Model, Trim, Engine, Notes) may be
// present or absent.
type Record struct {
	Details []Property `json:"compatibilityDetails"`
}

// Value returns the named detail and whether the record carries it.
func (r Record) Value(name string) (string, bool) {
	for _, d := range r.Details {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// GroupByName buckets filters by property name, keeping each name's values
// in input order and never deduplicating. Filters with an empty name are
// dropped from the grouping only; the raw sequence still goes upstream
// untouched on single-call lookups.
func GroupByName(filters []Property) map[string][]string {
	groups := make(map[string][]string)
	for _, f := range filters {
		if f.Name == "" {
			continue
		}
		groups[f.Name] = append(groups[f.Name], f.Value)
	}
	return groups
}

// Query is a normalized lookup: the filter sequence exactly as supplied
// plus the values of the one dimension eligible for fan-out.
type Query struct {
	Filters     []Property
	FanProperty string
	FanValues   []string
}

// Normalize groups the filters and pulls out the fan dimension's values.
// fanProperty is deployment policy (Year in every deployment so far).
func Normalize(filters []Property, fanProperty string) Query {
	return Query{
		Filters:     filters,
		FanProperty: fanProperty,
		FanValues:   GroupByName(filters)[fanProperty],
	}
}

// FannedOut reports whether the lookup takes one upstream call per fan
// value instead of a single call.
func (q Query) FannedOut() bool {
	return len(q.FanValues) > 1
}

// Branches returns the filter sequence for each upstream call. A
// single-call lookup passes the caller's filters through unmodified; a
// fanned-out lookup holds every other filter constant and appends the fan
// dimension fixed to one value per branch.
func (q Query) Branches() [][]Property {
	if !q.FannedOut() {
		return [][]Property{q.Filters}
	}

	rest := make([]Property, 0, len(q.Filters))
	for _, f := range q.Filters {
		if f.Name != q.FanProperty {
			rest = append(rest, f)
		}
	}

	branches := make([][]Property, len(q.FanValues))
	for i, v := range q.FanValues {
		branch := make([]Property, 0, len(rest)+1)
		branch = append(branch, rest...)
		branch = append(branch, Property{Name: q.FanProperty, Value: v})
		branches[i] = branch
	}
	return branches
}

// BaseValue returns the first caller-supplied value for name, or "" when
// the caller never filtered on it. The renderer falls back to it for
// columns whose property a record does not carry.
func BaseValue(filters []Property, name string) string {
	for _, f := range filters {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Merge flattens per-branch record lists into one sequence, branch order
// first, intra-branch order second. No sorting and no deduplication:
// branches that report structurally identical fitments keep one row each.
func Merge(branches [][]Record) []Record {
	var merged []Record
	for _, records := range branches {
		merged = append(merged, records...)
	}
	return merged
}
