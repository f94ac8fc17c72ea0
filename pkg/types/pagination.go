package types

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// Pagination selects a window of results by zero-based offset and page size.
type Pagination struct {
	FromIndex int `form:"from_index" json:"from_index"`
	Size      int `form:"size" json:"size"`
}

// DefaultPagination returns the first page with the default size.
func DefaultPagination() Pagination {
	return Pagination{FromIndex: 0, Size: DefaultPageSize}
}
