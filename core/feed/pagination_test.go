package feed

import (
	"fmt"
	"testing"

	"signage-app-api/core/domain"
)

func numberedItems(n int) []domain.ResolvedFeedItem {
	items := make([]domain.ResolvedFeedItem, n)
	for i := 0; i < n; i++ {
		items[i] = domain.ResolvedFeedItem{Title: fmt.Sprintf("Item %d", i+1)}
	}
	return items
}

func TestPaginateItems_AllItemsWhenPerPageLarge(t *testing.T) {
	result := PaginateItems(numberedItems(3), 1, 10)

	if len(result) != 3 {
		t.Errorf("PaginateItems returned %d items, want 3", len(result))
	}
	if result[0].Title != "Item 1" {
		t.Errorf("First item = %v, want Item 1", result[0].Title)
	}
}

func TestPaginateItems_SecondPage(t *testing.T) {
	result := PaginateItems(numberedItems(20), 2, 10)

	if len(result) != 10 {
		t.Errorf("PaginateItems returned %d items, want 10", len(result))
	}
	if result[0].Title != "Item 11" {
		t.Errorf("First item = %v, want Item 11", result[0].Title)
	}
	if result[9].Title != "Item 20" {
		t.Errorf("Last item = %v, want Item 20", result[9].Title)
	}
}

func TestPaginateItems_PageBeyondItems(t *testing.T) {
	result := PaginateItems(numberedItems(2), 5, 10)

	if len(result) != 0 {
		t.Errorf("PaginateItems returned %d items, want 0 for page beyond items", len(result))
	}
}

func TestPaginateItems_InvalidPage(t *testing.T) {
	for _, page := range []int{0, -1} {
		result := PaginateItems(numberedItems(3), page, 2)

		if len(result) != 2 {
			t.Errorf("page %d: PaginateItems returned %d items, want 2", page, len(result))
		}
		if result[0].Title != "Item 1" {
			t.Errorf("page %d: first item = %v, want Item 1", page, result[0].Title)
		}
	}
}

func TestPaginateItems_InvalidPerPage(t *testing.T) {
	for _, perPage := range []int{0, -5} {
		result := PaginateItems(numberedItems(15), 1, perPage)

		if len(result) != 10 {
			t.Errorf("perPage %d: PaginateItems returned %d items, want 10 (default)", perPage, len(result))
		}
	}
}

func TestPaginateItems_PartialLastPage(t *testing.T) {
	result := PaginateItems(numberedItems(15), 2, 10)

	if len(result) != 5 {
		t.Errorf("PaginateItems returned %d items, want 5 (partial last page)", len(result))
	}
	if result[4].Title != "Item 15" {
		t.Errorf("Last item = %v, want Item 15", result[4].Title)
	}
}
