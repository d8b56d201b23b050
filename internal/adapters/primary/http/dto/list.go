package dto

// ListResponse is the paging envelope shared by every list endpoint.
type ListResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	PageSize   int `json:"page_size"`
	NextOffset int `json:"next_offset"`
}

func NewListResponse[T any](items []T, total, pageSize, offset int) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items:      items,
		Total:      total,
		PageSize:   pageSize,
		NextOffset: offset + len(items),
	}
}
