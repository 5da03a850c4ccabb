// Package model defines domain types for goals, tracking sessions and
// their flattened export records.
package model

// Goal is a named objective with activities to perform and to avoid.
type Goal struct {
	Name  string   `json:"name" toml:"name" yaml:"name"`
	Do    []string `json:"do" toml:"do,omitempty" yaml:"do,omitempty"`
	DoNot []string `json:"do_not" toml:"do_not,omitempty" yaml:"do_not,omitempty"`
}

// ActivityCount returns the number of do and do-not activities.
func (g Goal) ActivityCount() int {
	return len(g.Do) + len(g.DoNot)
}

// Kind distinguishes activities to perform from activities to avoid.
type Kind int

const (
	KindDo Kind = iota
	KindDoNot
)

func (k Kind) String() string {
	if k == KindDoNot {
		return "do_not"
	}
	return "do"
}

// Question is the tracking prompt for an activity of this kind.
func (k Kind) Question() string {
	if k == KindDoNot {
		return "Did you AVOID it? (y/n)"
	}
	return "Completed? (y/n)"
}
