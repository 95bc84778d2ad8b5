// Package query translates string-typed HTTP query parameters into MongoDB
// filters and pagination windows. Everything arrives as a string; parsing
// rules are deliberately strict where silence would change semantics
// (ranges) and deliberately lenient where a default is harmless (paging).
package query

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/utils"
)

const (
	DefaultLimit   = 10
	SearchMaxLimit = 100
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// ParsePagination parses page/limit with defaults. Non-numeric or
// non-positive values fall back to the defaults; limit is clamped to
// maxLimit.
func ParsePagination(pageRaw, limitRaw string, defaultLimit, maxLimit int) Pagination {
	p := Pagination{Page: 1, Limit: defaultLimit}

	if pageRaw != "" {
		if n, err := strconv.Atoi(pageRaw); err == nil && n > 0 {
			p.Page = n
		}
	}
	if limitRaw != "" {
		if n, err := strconv.Atoi(limitRaw); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// ParseBool maps "true"/"false" to a filter value and anything else,
// including absence, to nil ("filter not applied"). Unset booleans must
// never coerce to false.
func ParseBool(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// Search builds a case-insensitive substring match across the given fields.
func Search(term string, fields ...string) bson.M {
	conditions := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		conditions = append(conditions, bson.M{f: bson.M{"$regex": term, "$options": "i"}})
	}
	return bson.M{"$or": conditions}
}

// Range parses min/max strings into an inclusive range condition for field.
// A value that fails to parse is a validation error, never a silent no-op.
func Range(field, minRaw, maxRaw string) (bson.M, error) {
	cond := bson.M{}

	if minRaw != "" {
		min, err := strconv.ParseFloat(minRaw, 64)
		if err != nil {
			return nil, utils.NewValidationError(utils.FieldError{
				Path:    "min" + capitalize(field),
				Message: fmt.Sprintf("%q is not a number", minRaw),
			})
		}
		cond["$gte"] = min
	}
	if maxRaw != "" {
		max, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil {
			return nil, utils.NewValidationError(utils.FieldError{
				Path:    "max" + capitalize(field),
				Message: fmt.Sprintf("%q is not a number", maxRaw),
			})
		}
		cond["$lte"] = max
	}

	if len(cond) == 0 {
		return nil, nil
	}
	return cond, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Sort parses a sort parameter ("field" ascending, "-field" descending),
// falling back to the given default when the parameter is empty.
func Sort(raw, defaultField string, defaultOrder int) bson.D {
	if raw == "" {
		return bson.D{{Key: defaultField, Value: defaultOrder}}
	}
	if strings.HasPrefix(raw, "-") {
		return bson.D{{Key: strings.TrimPrefix(raw, "-"), Value: -1}}
	}
	return bson.D{{Key: raw, Value: 1}}
}

// Page is the uniform paged response. Total comes from a count that runs
// separately from the page fetch; the two reads are not atomic relative to
// each other, so the metadata can lag a concurrent write.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPage[T any](items []T, total int64, p Pagination) *Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return &Page[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit, Pages: pages}
}
