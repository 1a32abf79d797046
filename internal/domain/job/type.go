package job

import "fmt"

// Type is the closed employment-category enumeration. Constructing one goes
// through ParseType so an invalid category is an error at the edge, not a
// stray string deep in a query.
type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

var allTypes = []Type{TypeFullTime, TypePartTime, TypeContract, TypeInternship}

func ParseType(s string) (Type, error) {
	for _, t := range allTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown job type: %q", s)
}

func (t Type) Valid() bool {
	_, err := ParseType(string(t))
	return err == nil
}

func (t Type) String() string { return string(t) }

func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}
