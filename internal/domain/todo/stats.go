package todo

// Stats aggregates todo counts. Total always equals Completed + Pending when
// the three counts are read within one transaction.
type Stats struct {
	Total     int64
	Completed int64
	Pending   int64
}
