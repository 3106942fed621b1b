package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kaio/entities"
	"kaio/pkg/planstore"
)

type GroceryCtrl struct{ store *planstore.Store }

func New(store *planstore.Store) *GroceryCtrl { return &GroceryCtrl{store} }

type categoryGroup struct {
	Category string                 `json:"category"`
	Items    []entities.GroceryItem `json:"items"`
}

// GroupByCategory buckets items in the fixed category display order,
// keeping relative item order inside each bucket. Empty categories are
// omitted.
func GroupByCategory(items []entities.GroceryItem) []categoryGroup {
	buckets := make(map[string][]entities.GroceryItem, len(entities.GroceryCategories))
	for _, it := range items {
		cat := entities.NormalizeGroceryCategory(it.Category)
		buckets[cat] = append(buckets[cat], it)
	}
	out := make([]categoryGroup, 0, len(buckets))
	for _, cat := range entities.GroceryCategories {
		if its, ok := buckets[cat]; ok {
			out = append(out, categoryGroup{Category: cat, Items: its})
		}
	}
	return out
}

func (h *GroceryCtrl) Get(c echo.Context) error {
	items := h.store.Snapshot().GroceryList
	purchased := 0
	for _, it := range items {
		if it.Purchased {
			purchased++
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"groups":    GroupByCategory(items),
		"total":     len(items),
		"purchased": purchased,
	})
}

func (h *GroceryCtrl) Toggle(c echo.Context) error {
	// unknown ids are benign: the list may have been regenerated under a
	// stale page
	h.store.ToggleGroceryItem(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]any{"groups": GroupByCategory(h.store.Snapshot().GroceryList)})
}
