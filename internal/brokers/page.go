package brokers

// PageSizeOptions are the sizes offered by the page-size control.
var PageSizeOptions = []int{10, 25, 50, 100, 250}

// PageConfig is the broker list's pagination state.
type PageConfig struct {
	PageSize        int
	Page            int // Zero-based
	ShowSizeChanger bool
}

// NewPageConfig creates a pagination config, falling back to fallback when
// pageSize is not positive.
func NewPageConfig(pageSize, fallback int, showSizeChanger bool) PageConfig {
	if pageSize <= 0 {
		pageSize = fallback
	}
	return PageConfig{PageSize: pageSize, ShowSizeChanger: showSizeChanger}
}

// TotalPages returns the number of pages needed for total rows (at least one).
func (p PageConfig) TotalPages(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// Clamp keeps the page index inside [0, TotalPages(total)).
func (p PageConfig) Clamp(total int) PageConfig {
	last := p.TotalPages(total) - 1
	if p.Page > last {
		p.Page = last
	}
	if p.Page < 0 {
		p.Page = 0
	}
	return p
}

// Bounds returns the slice bounds of the current page for total rows.
func (p PageConfig) Bounds(total int) (start, end int) {
	p = p.Clamp(total)
	start = p.Page * p.PageSize
	end = start + p.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

// WithPageSize changes the page size and clamps the page index.
// Non-positive sizes leave the config unchanged.
func (p PageConfig) WithPageSize(size, total int) PageConfig {
	if size <= 0 {
		return p
	}
	p.PageSize = size
	return p.Clamp(total)
}

// NextPageSize returns the next larger option, or the largest option.
func NextPageSize(current int) int {
	for _, o := range PageSizeOptions {
		if o > current {
			return o
		}
	}
	return PageSizeOptions[len(PageSizeOptions)-1]
}

// PrevPageSize returns the next smaller option, or the smallest option.
func PrevPageSize(current int) int {
	for i := len(PageSizeOptions) - 1; i >= 0; i-- {
		if PageSizeOptions[i] < current {
			return PageSizeOptions[i]
		}
	}
	return PageSizeOptions[0]
}
