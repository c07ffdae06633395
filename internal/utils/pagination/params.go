package pagination

import (
	"fmt"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds normalized page/limit pagination values.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse validates raw page/limit query values and normalizes them to an
// offset. Empty strings take the defaults (page 1, limit 10). Out-of-range
// values are rejected rather than clamped.
func Parse(pageStr, limitStr string) (Params, error) {
	page := 1
	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			return Params{}, fmt.Errorf("page must be an integer")
		}
		if p < 1 {
			return Params{}, fmt.Errorf("page must be >= 1")
		}
		page = p
	}

	limit := DefaultLimit
	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			return Params{}, fmt.Errorf("limit must be an integer")
		}
		if l < 1 || l > MaxLimit {
			return Params{}, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
		}
		limit = l
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}
