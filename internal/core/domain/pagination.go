package domain

// Pagination is the backend-computed paging block attached to list
// responses. Consumers must treat it as authoritative and never derive
// TotalPages themselves.
type Pagination struct {
	CurrentPage     int
	TotalPages      int
	TotalItems      int
	ItemsPerPage    int
	HasNextPage     bool
	HasPreviousPage bool
}
