package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the page size used when the caller configures none.
	DefaultLimit = 20
	// MaxLimit is the fallback hard cap. Larger requests are clamped,
	// not rejected.
	MaxLimit = 100
)

// Page holds normalized offset/limit paging parameters.
type Page struct {
	Offset int
	Limit  int
}

// ValidatePageWithLimits normalizes raw offset/limit values against the
// given default and cap: negative offsets become zero, a missing or
// non-positive limit becomes the default, and limits above the cap are
// clamped to it. Non-positive default/cap fall back to the package
// constants.
func ValidatePageWithLimits(offset, limit, defaultLimit, maxLimit int) Page {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Page{Offset: offset, Limit: limit}
}

// QueryInt reads an integer query parameter, falling back to defaultVal
// when the parameter is absent or unparsable.
func QueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
