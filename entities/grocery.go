package entities

type GroceryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"` // produce|protein|dairy|grains|other
	Purchased bool   `json:"purchased"`
}

// GroceryCategories in display order.
var GroceryCategories = [5]string{"produce", "protein", "dairy", "grains", "other"}

// NormalizeGroceryCategory folds unknown categories into "other".
func NormalizeGroceryCategory(c string) string {
	for _, known := range GroceryCategories {
		if c == known {
			return c
		}
	}
	return "other"
}
