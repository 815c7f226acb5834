// Package template exposes the fixed set of selectable portfolio templates.
// The catalog is read-only configuration; ids are the stable keys carried on
// generation requests.
package template

// Template describes one selectable visual template
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
}

var catalog = []Template{
	{
		ID:          "minimal-professional",
		Name:        "Minimal Professional",
		Description: "Clean, corporate-friendly design perfect for professionals",
		Category:    "professional",
		Thumbnail:   "https://images.unsplash.com/photo-1618005198919-d3d4b5a92ead?w=800&q=80",
	},
	{
		ID:          "creative-bold",
		Name:        "Creative Bold",
		Description: "Vibrant and unique design for designers and artists",
		Category:    "creative",
		Thumbnail:   "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800&q=80",
	},
	{
		ID:          "tech-modern",
		Name:        "Tech Modern",
		Description: "Sleek, technical design for developers and engineers",
		Category:    "technical",
		Thumbnail:   "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&q=80",
	},
}

// Catalog returns every selectable template in display order
func Catalog() []Template {
	return append([]Template(nil), catalog...)
}

// Lookup finds a template by id
func Lookup(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
