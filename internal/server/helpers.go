package server

import (
	"github.com/gofiber/fiber/v2"
)

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// queryValues returns every occurrence of a query parameter, so repeated keys
// like ?make=Ford&make=Toyota stay multi-valued.
func queryValues(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}
