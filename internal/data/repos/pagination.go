package repos

import "strconv"

// PageQuery is the raw, untrusted paging input from a list request.
type PageQuery struct {
	Page   string
	Limit  string
	SortBy string
	Order  string
}

// Page is the normalized directive applied to a list query.
type Page struct {
	Page       int
	Limit      int
	SortColumn string
	Desc       bool
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// NormalizePage coerces the raw query into a bounded directive. Missing or
// unparseable numbers fall back to their defaults, order is descending only
// for the exact string "desc", and sortBy must appear in the entity's
// allow-list or the default column is used instead.
func NormalizePage(q PageQuery, allowed map[string]string, defaultColumn string) Page {
	page := atoiDefault(q.Page, defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := atoiDefault(q.Limit, defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	column := defaultColumn
	if col, ok := allowed[q.SortBy]; ok {
		column = col
	}
	return Page{
		Page:       page,
		Limit:      limit,
		SortColumn: column,
		Desc:       q.Order == "desc",
	}
}

func (p Page) offset() int { return (p.Page - 1) * p.Limit }

func (p Page) order() string {
	if p.Desc {
		return p.SortColumn + " DESC"
	}
	return p.SortColumn + " ASC"
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
