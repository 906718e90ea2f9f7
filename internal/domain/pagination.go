package domain

// Page size bounds for list operations
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// NormalizePage clamps a requested page into the supported bounds.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
