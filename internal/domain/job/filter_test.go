package job

import "testing"

func int64p(v int64) *int64 { return &v }

func TestFilterWithTypeToggled(t *testing.T) {
	var f Filter

	f = f.WithTypeToggled(TypeFullTime)
	if f.Type == nil || *f.Type != TypeFullTime {
		t.Fatalf("expected full-time selected, got %v", f.Type)
	}

	// Selecting another category replaces, it does not accumulate.
	f = f.WithTypeToggled(TypeContract)
	if f.Type == nil || *f.Type != TypeContract {
		t.Fatalf("expected contract selected, got %v", f.Type)
	}

	// Toggling the selected category clears the constraint.
	f = f.WithTypeToggled(TypeContract)
	if f.Type != nil {
		t.Fatalf("expected type cleared, got %v", *f.Type)
	}
}

func TestFilterEmpty(t *testing.T) {
	if !(Filter{Search: "  "}).Empty() {
		t.Fatalf("whitespace search should count as empty")
	}
	if (Filter{SalaryMin: int64p(0)}).Empty() {
		t.Fatalf("present salary bound should not count as empty")
	}
}

func TestFilterMatches(t *testing.T) {
	j := Job{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin, Germany",
		Type:        TypeFullTime,
		Description: "Build APIs in a small team",
		SalaryMin:   int64p(70000),
	}

	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty filter", Filter{}, true},
		{"search title case-insensitive", Filter{Search: "backend"}, true},
		{"search company", Filter{Search: "acme"}, true},
		{"search description", Filter{Search: "small team"}, true},
		{"search miss", Filter{Search: "frontend"}, false},
		{"location substring", Filter{Location: "berlin"}, true},
		{"location miss", Filter{Location: "london"}, false},
		{"type match", Filter{}.WithTypeToggled(TypeFullTime), true},
		{"type miss", Filter{}.WithTypeToggled(TypePartTime), false},
		{"salary met", Filter{SalaryMin: int64p(60000)}, true},
		{"salary too low", Filter{SalaryMin: int64p(80000)}, false},
		{"conjunction", Filter{Search: "backend", Location: "london"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Matches(j); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterMatches_NoSalaryListed(t *testing.T) {
	j := Job{Title: "Intern", Company: "Acme", Location: "Remote", Type: TypeInternship, Description: "d"}
	if (Filter{SalaryMin: int64p(1)}).Matches(j) {
		t.Fatalf("posting without a salary should not satisfy a salary floor")
	}
}
