package job

import "strings"

// Filter is the transient browsing criteria. Absent fields impose no
// constraint; present fields compose conjunctively. Search matches title,
// company or description as a case-insensitive substring.
type Filter struct {
	Search    string
	Location  string
	Type      *Type
	SalaryMin *int64
}

func (f Filter) Empty() bool {
	return strings.TrimSpace(f.Search) == "" &&
		strings.TrimSpace(f.Location) == "" &&
		f.Type == nil &&
		f.SalaryMin == nil
}

// WithTypeToggled returns the filter with the given type selected, or with
// the type constraint cleared when it is already selected
// (single-select-or-none).
func (f Filter) WithTypeToggled(t Type) Filter {
	if f.Type != nil && *f.Type == t {
		f.Type = nil
		return f
	}
	f.Type = &t
	return f
}

// Matches reports whether j satisfies every present constraint. The SQL
// repository expresses the same predicate in WHERE clauses; this in-memory
// form backs the browse session tests and the fake repository.
func (f Filter) Matches(j Job) bool {
	if s := strings.TrimSpace(f.Search); s != "" {
		s = strings.ToLower(s)
		if !strings.Contains(strings.ToLower(j.Title), s) &&
			!strings.Contains(strings.ToLower(j.Company), s) &&
			!strings.Contains(strings.ToLower(j.Description), s) {
			return false
		}
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		if !strings.Contains(strings.ToLower(j.Location), strings.ToLower(l)) {
			return false
		}
	}
	if f.Type != nil && j.Type != *f.Type {
		return false
	}
	if f.SalaryMin != nil {
		if j.SalaryMin == nil || *j.SalaryMin < *f.SalaryMin {
			return false
		}
	}
	return true
}
