package types

// PageRequest carries validated 1-based pagination parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes the pagination state of a list response.
type PageInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPageInfo computes the page count for a total row count.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	pages := int(total) / req.Limit
	if int(total)%req.Limit != 0 {
		pages++
	}
	return PageInfo{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
		Pages: pages,
	}
}
