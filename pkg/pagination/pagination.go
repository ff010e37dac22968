package pagination

// Params selects a window of a result list. PageSize 0 means everything.
type Params struct {
	Page     int
	PageSize int
}

// Enabled is true when a page size was requested
func (p Params) Enabled() bool {
	return p.PageSize > 0
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	offset = (p.Page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Slice returns the window of items selected by p, keeping their order.
// A page past the end is empty.
func Slice[T any](items []T, p Params) []T {
	if !p.Enabled() {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()
	if offset < 0 || offset >= len(items) {
		return []T{}
	}

	end := min(offset+limit, len(items))
	return items[offset:end]
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
