// Package pagination computes page descriptors for listed collections.
// It is pure: no I/O, deterministic given inputs.
package pagination

// Descriptor describes one page of a listing.
type Descriptor struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	PageSize    int   `json:"pageSize"`
}

// Paginate computes the descriptor for requestedPage over totalItems records.
// Pages below 1 clamp to 1. Pages beyond the last keep the requested page
// number; the corresponding offset lands past the data, so the caller's query
// comes back empty while totals stay correct.
func Paginate(totalItems int64, pageSize, requestedPage int) Descriptor {
	if pageSize < 1 {
		pageSize = 1
	}
	if requestedPage < 1 {
		requestedPage = 1
	}

	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	return Descriptor{
		CurrentPage: requestedPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    pageSize,
	}
}

// PageOffset returns the query offset for requestedPage, clamping pages
// below 1 to the first page.
func PageOffset(pageSize, requestedPage int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if requestedPage < 1 {
		requestedPage = 1
	}
	return (requestedPage - 1) * pageSize
}
