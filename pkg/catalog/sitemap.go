package catalog

// Section is a storefront section: its route, a human description used in
// responses, and the alias phrases users refer to it by.
type Section struct {
	Name        string
	Path        string
	Description string
	Aliases     []string
}

// Sections is the ordered site map. Order matters for first-match scans.
var Sections = []Section{
	{
		Name:        "home",
		Path:        "/",
		Description: "The main page of our store featuring featured products and current promotions.",
		Aliases:     []string{"main page", "homepage", "front page"},
	},
	{
		Name:        "categories",
		Path:        "/categories",
		Description: "Browse all product categories including Electronics, Clothing, Kitchen, Accessories, Footwear, and Home.",
		Aliases:     []string{"product categories", "browse categories", "all categories"},
	},
	{
		Name:        "orders",
		Path:        "/orders",
		Description: "View your order history, track current orders, and manage returns.",
		Aliases:     []string{"order history", "my orders", "purchase history", "order tracking"},
	},
	{
		Name:        "wishlist",
		Path:        "/wishlist",
		Description: "Products you've saved for later. You can add items to your wishlist by clicking the heart icon on any product.",
		Aliases:     []string{"saved items", "favorites", "saved for later"},
	},
	{
		Name:        "deals",
		Path:        "/deals",
		Description: "Current promotions, discounts, and special offers available in our store.",
		Aliases:     []string{"promotions", "discounts", "sales", "special offers"},
	},
	{
		Name:        "account",
		Path:        "/account",
		Description: "Manage your account settings, personal information, payment methods, and preferences.",
		Aliases:     []string{"profile", "my account", "settings", "personal info"},
	},
	{
		Name:        "cart",
		Path:        "/cart",
		Description: "View and manage items in your shopping cart before checkout.",
		Aliases:     []string{"shopping cart", "my cart", "checkout"},
	},
}

// Categories are the known product categories.
var Categories = []string{"electronics", "clothing", "kitchen", "accessories", "footwear", "home"}

var sectionIndex = buildSectionIndex()

func buildSectionIndex() map[string]*Section {
	index := make(map[string]*Section, len(Sections))
	for i := range Sections {
		index[Sections[i].Name] = &Sections[i]
	}
	return index
}

// SectionByName returns the site section for name.
func SectionByName(name string) (*Section, bool) {
	section, ok := sectionIndex[name]
	return section, ok
}
