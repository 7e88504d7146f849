package catalog

import (
	"fmt"
	"os"
	"strings"

	"cafe-orders-api/models"

	"github.com/goccy/go-yaml"
)

// Catalog is the static menu: loaded once at boot, immutable after.
type Catalog struct {
	items []models.MenuItem
}

// CategoryInfo is display metadata for the category navigation.
type CategoryInfo struct {
	ID   models.Category `json:"id"`
	Name string          `json:"name"`
	Icon string          `json:"icon"`
}

// Categories is the fixed category set, in display order.
var Categories = []CategoryInfo{
	{ID: models.CategoryAll, Name: "All Items", Icon: "☕"},
	{ID: models.CategoryHot, Name: "Hot Drinks", Icon: "🔥"},
	{ID: models.CategoryCold, Name: "Cold Drinks", Icon: "🧊"},
	{ID: models.CategoryFood, Name: "Food", Icon: "🥐"},
}

// Load reads the menu definition from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	var doc struct {
		Items []models.MenuItem `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	if err := validate(doc.Items); err != nil {
		return nil, err
	}
	return &Catalog{items: doc.Items}, nil
}

// New builds a catalog from an in-memory item list.
func New(items []models.MenuItem) (*Catalog, error) {
	if err := validate(items); err != nil {
		return nil, err
	}
	return &Catalog{items: items}, nil
}

func validate(items []models.MenuItem) error {
	seen := map[int]bool{}
	for _, it := range items {
		if it.ID == 0 || seen[it.ID] {
			return fmt.Errorf("menu item %q: missing or duplicate id %d", it.Name, it.ID)
		}
		seen[it.ID] = true
		if it.Price <= 0 {
			return fmt.Errorf("menu item %q: price must be a positive whole-rupee amount", it.Name)
		}
		switch it.Category {
		case models.CategoryHot, models.CategoryCold, models.CategoryFood:
		default:
			return fmt.Errorf("menu item %q: unknown category %q", it.Name, it.Category)
		}
	}
	return nil
}

// Items returns the full catalog in definition order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the item with the given id.
func (c *Catalog) Find(id int) (models.MenuItem, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// Filter applies the category filter (exact match, or CategoryAll which
// passes everything), then retains items whose name or description
// contains the search term as a case-insensitive substring. Filters
// compose with AND; an empty result is not an error.
func (c *Catalog) Filter(category models.Category, search string) []models.MenuItem {
	items := []models.MenuItem{}
	for _, it := range c.items {
		if category != models.CategoryAll && it.Category != category {
			continue
		}
		items = append(items, it)
	}
	if search == "" {
		return items
	}
	q := strings.ToLower(search)
	matched := []models.MenuItem{}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) {
			matched = append(matched, it)
		}
	}
	return matched
}
