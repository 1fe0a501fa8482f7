package todo

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Completed     *bool
	TitleContains string
}

// Matches reports whether t satisfies the completion filter.
func (f Filter) Matches(t *Todo) bool {
	return f.Completed == nil || t.Completed == *f.Completed
}
