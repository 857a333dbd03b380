package models

// Pagination describes the page-state of any listable resource
type Pagination struct {
	Count      int
	Total      *int
	HasMore    bool
	NextCursor *int
}

// PageOf builds a Pagination from the offset-based page fields Jira returns
func PageOf(startAt, count, total int) Pagination {
	p := Pagination{Count: count, Total: &total}
	if startAt+count < total {
		p.HasMore = true
		next := startAt + count
		p.NextCursor = &next
	}
	return p
}
