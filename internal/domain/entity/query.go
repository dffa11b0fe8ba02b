package entity

import (
	"fmt"
	"time"
)

// BranchSelector identifies a branch by id, by name, or both. The zero value selects every branch.
type BranchSelector struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// IsZero reports whether the selector constrains nothing.
func (s BranchSelector) IsZero() bool {
	return s.ID == nil && s.Name == ""
}

// BranchScoped is implemented by record types that can be narrowed to a branch.
type BranchScoped interface {
	MatchesBranch(sel BranchSelector) bool
}

// DateRange is an inclusive calendar range; a nil bound is unbounded on that side.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Query is the full filter tuple a dashboard run is computed for.
type Query struct {
	Branch BranchSelector `json:"branch"`
	Range  DateRange      `json:"range"`
	Search string         `json:"search,omitempty"`
}

// CacheKey renders the query as a stable string. Dates are reduced to their calendar day,
// which is all the filter engine looks at.
func (q Query) CacheKey() string {
	id := "*"
	if q.Branch.ID != nil {
		id = fmt.Sprintf("%d", *q.Branch.ID)
	}
	return fmt.Sprintf("b=%s|n=%s|s=%s|e=%s|q=%s", id, q.Branch.Name, dayOrStar(q.Range.Start), dayOrStar(q.Range.End), q.Search)
}

func dayOrStar(t *time.Time) string {
	if t == nil {
		return "*"
	}
	return t.UTC().Format("2006-01-02")
}
