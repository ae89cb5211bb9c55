package response

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasMore    bool `json:"has_more"`
	From       int  `json:"from"`
	To         int  `json:"to"`
}

// Paginate slices a page out of total items and fills the envelope.
func Paginate(page, pageSize, total int) (offset, limit int, p *Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	totalPages := (total + pageSize - 1) / pageSize

	offset = (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	limit = pageSize
	if offset+limit > total {
		limit = total - offset
	}

	from, to := 0, 0
	if limit > 0 {
		from = offset + 1
		to = offset + limit
	}
	return offset, limit, &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    page < totalPages,
		From:       from,
		To:         to,
	}
}
