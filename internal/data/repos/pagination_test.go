package repos

import "testing"

var testSortFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
}

func TestNormalizePageDefaults(t *testing.T) {
	p := NormalizePage(PageQuery{}, testSortFields, "id")
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected page=1 limit=10, got page=%d limit=%d", p.Page, p.Limit)
	}
	if p.SortColumn != "id" || p.Desc {
		t.Fatalf("expected ascending id sort, got %q desc=%v", p.SortColumn, p.Desc)
	}
}

func TestNormalizePageBadNumbersFallBack(t *testing.T) {
	for _, q := range []PageQuery{
		{Page: "abc", Limit: "xyz"},
		{Page: "0", Limit: "0"},
		{Page: "-3", Limit: "-1"},
	} {
		p := NormalizePage(q, testSortFields, "id")
		if p.Page != 1 || p.Limit != 10 {
			t.Fatalf("query %+v: expected defaults, got page=%d limit=%d", q, p.Page, p.Limit)
		}
	}
}

func TestNormalizePageOrderIsDescOnlyForExactString(t *testing.T) {
	for q, want := range map[string]bool{
		"desc": true,
		"DESC": false,
		"Desc": false,
		"asc":  false,
		"":     false,
		"down": false,
	} {
		p := NormalizePage(PageQuery{Order: q}, testSortFields, "id")
		if p.Desc != want {
			t.Fatalf("order %q: expected desc=%v, got %v", q, want, p.Desc)
		}
	}
}

func TestNormalizePageSortAllowList(t *testing.T) {
	p := NormalizePage(PageQuery{SortBy: "createdAt"}, testSortFields, "id")
	if p.SortColumn != "created_at" {
		t.Fatalf("expected created_at, got %q", p.SortColumn)
	}

	// Anything outside the allow-list falls back to the default column.
	p = NormalizePage(PageQuery{SortBy: "password; DROP TABLE users"}, testSortFields, "id")
	if p.SortColumn != "id" {
		t.Fatalf("expected fallback to id, got %q", p.SortColumn)
	}
}

func TestPageOffsetAndOrder(t *testing.T) {
	p := Page{Page: 3, Limit: 10, SortColumn: "name", Desc: true}
	if p.offset() != 20 {
		t.Fatalf("expected offset 20, got %d", p.offset())
	}
	if p.order() != "name DESC" {
		t.Fatalf("unexpected order clause %q", p.order())
	}
	p.Desc = false
	if p.order() != "name ASC" {
		t.Fatalf("unexpected order clause %q", p.order())
	}
}
