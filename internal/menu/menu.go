// Package menu holds the café's menu catalogue.
//
// The menu is editorial content, not user data: it changes when the
// café changes its offering, via a code change and redeploy. That is
// why it lives here as a compiled-in slice rather than behind the
// storage interface — there is nothing to create, validate, or count.
package menu

// Item is a single menu entry.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`    // display string, e.g. "$4.50"
	Tagline  string `json:"tagline"`
	Image    string `json:"image"`
	Category string `json:"category"` // coffee, tea, pastries, snacks
}

var items = []Item{
	{
		ID:       "1",
		Name:     "Signature Cappuccino",
		Price:    "$4.50",
		Tagline:  "Art in every cup",
		Image:    "https://images.unsplash.com/photo-1570197788417-0e82375c9371?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "coffee",
	},
	{
		ID:       "2",
		Name:     "Double Espresso",
		Price:    "$3.50",
		Tagline:  "Pure intensity",
		Image:    "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "coffee",
	},
	{
		ID:       "3",
		Name:     "Cold Brew Delight",
		Price:    "$4.00",
		Tagline:  "Smooth and refreshing",
		Image:    "https://images.unsplash.com/photo-1517701604599-bb29b565090c?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "coffee",
	},
	{
		ID:       "4",
		Name:     "Earl Grey Supreme",
		Price:    "$3.75",
		Tagline:  "A royal experience",
		Image:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "tea",
	},
	{
		ID:       "5",
		Name:     "Fresh Mint Green Tea",
		Price:    "$3.25",
		Tagline:  "Nature's refreshment",
		Image:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "tea",
	},
	{
		ID:       "6",
		Name:     "Butter Croissant",
		Price:    "$3.50",
		Tagline:  "Baked fresh, served warm",
		Image:    "https://cdn.pixabay.com/photo/2014/12/11/02/55/croissant-563836_1280.jpg",
		Category: "pastries",
	},
	{
		ID:       "7",
		Name:     "Berry Chocolate Muffin",
		Price:    "$4.25",
		Tagline:  "Indulgence redefined",
		Image:    "https://images.unsplash.com/photo-1486427944299-d1955d23e34d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "pastries",
	},
	{
		ID:       "8",
		Name:     "Fruit Danish",
		Price:    "$4.75",
		Tagline:  "Sweet perfection",
		Image:    "https://cdn.pixabay.com/photo/2017/07/28/14/23/pastries-2548564_1280.jpg",
		Category: "pastries",
	},
	{
		ID:       "9",
		Name:     "Avocado Toast",
		Price:    "$6.50",
		Tagline:  "Healthy and delicious",
		Image:    "https://images.unsplash.com/photo-1482049016688-2d3e1b311543?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "snacks",
	},
	{
		ID:       "10",
		Name:     "Artisan Sandwich",
		Price:    "$8.75",
		Tagline:  "Crafted with love",
		Image:    "https://images.unsplash.com/photo-1550547660-d9450f859349?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Category: "snacks",
	},
}

// Items returns the full catalogue. The returned slice is a fresh copy;
// callers can reorder or filter it freely.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByCategory returns the items in the given category. An unknown
// category yields an empty (non-nil) slice.
func ByCategory(category string) []Item {
	out := make([]Item, 0)
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
