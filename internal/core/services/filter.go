package services

import "lx-registry-service/internal/core/ports/output"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizeFilter bounds the page size and clamps a negative offset to zero.
// List handlers echo the result in the response envelope.
func NormalizeFilter(filter ports.ListFilter) ports.ListFilter {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}
