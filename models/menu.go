package models

// Category groups menu items. The set is fixed at deployment time;
// CategoryAll is the universal filter that passes everything.
type Category string

const (
	CategoryAll  Category = "all"
	CategoryHot  Category = "hot"
	CategoryCold Category = "cold"
	CategoryFood Category = "food"
)

// MenuItem is a static catalog entry: loaded once at boot, never
// mutated or persisted remotely. Price is in whole rupees.
type MenuItem struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       int      `json:"price" yaml:"price"`
	Category    Category `json:"category" yaml:"category"`
	Popular     bool     `json:"popular,omitempty" yaml:"popular"`
	Image       string   `json:"image,omitempty" yaml:"image"`
}
