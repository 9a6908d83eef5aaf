package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Category is a product panel together with the search words that route to it.
type Category struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	Synonyms []string `yaml:"synonyms"`
}

// Product is one card on a category panel.
type Product struct {
	Name      string `yaml:"name"`
	PriceText string `yaml:"price"`
	ImageRef  string `yaml:"image"`
	Category  string `yaml:"category"`
}

// Catalog is the full set of categories and products. Category order is
// significant: it is the tab order and the tie-break for keyword matching.
type Catalog struct {
	Categories []Category `yaml:"categories"`
	Products   []Product  `yaml:"products"`
	Source     string     `yaml:"-"`
}

// DefaultCategories returns the built-in keyword table in declaration order.
func DefaultCategories() []Category {
	return []Category{
		{ID: "pants", Label: "Pants", Synonyms: []string{"pants", "trousers", "jeans", "leggings", "bottoms", "slacks"}},
		{ID: "jewelry", Label: "Jewelry", Synonyms: []string{"jewelry", "jewelary", "accessory", "necklace", "ring", "earring", "bracelet", "gem", "gold", "silver"}},
		{ID: "tops", Label: "Tops", Synonyms: []string{"tops", "top", "shirt", "blouse", "sweater", "tshirt", "tee", "hoodie", "jacket", "coat"}},
		{ID: "dresses", Label: "Dresses", Synonyms: []string{"dresses", "dress", "gown", "skirt", "maxi", "mini", "midi"}},
		{ID: "footwear", Label: "Footwear", Synonyms: []string{"footwear", "shoes", "shoe", "boots", "sneakers", "heels", "sandals", "flats"}},
	}
}

// Match returns the first category, in declaration order, with a synonym
// contained in query. Matching is case-insensitive and ignores surrounding
// whitespace. An empty query never matches.
func Match(categories []Category, query string) (string, bool) {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	for _, c := range categories {
		for _, syn := range c.Synonyms {
			s := fold.String(strings.TrimSpace(syn))
			if s != "" && strings.Contains(q, s) {
				return c.ID, true
			}
		}
	}
	return "", false
}

// Match routes a free-text query to one of the catalog's categories.
func (c Catalog) Match(query string) (string, bool) {
	return Match(c.Categories, query)
}

// Category looks up a category by id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// ByCategory returns the products on the given panel in file order.
func (c Catalog) ByCategory(id string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Category == id {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	dup := Catalog{Source: c.Source}
	if len(c.Categories) > 0 {
		dup.Categories = make([]Category, len(c.Categories))
		for i, cat := range c.Categories {
			cat.Synonyms = append([]string(nil), cat.Synonyms...)
			dup.Categories[i] = cat
		}
	}
	if len(c.Products) > 0 {
		dup.Products = make([]Product, len(c.Products))
		copy(dup.Products, c.Products)
	}
	return dup
}

// Default returns the embedded catalog.
func Default() (Catalog, error) {
	cat, err := Parse(defaultCatalog, "")
	if err != nil {
		return Catalog{}, fmt.Errorf("parse embedded catalog: %w", err)
	}
	cat.Source = "embedded"
	return cat, nil
}

// Load reads a YAML catalog from path. An empty path returns the embedded
// default. Relative image references are resolved against the file's directory.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return Catalog{}, err
	}
	cat.Source = path
	return cat, nil
}

// Parse decodes catalog YAML. When the document declares no categories the
// built-in keyword table is used. baseDir, if set, anchors relative image refs.
func Parse(data []byte, baseDir string) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(cat.Categories) == 0 {
		cat.Categories = DefaultCategories()
	}
	if err := cat.validate(); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range cat.Products {
		ref := strings.TrimSpace(cat.Products[i].ImageRef)
		if baseDir != "" && ref != "" && !isRemote(ref) && !filepath.IsAbs(ref) {
			ref = filepath.Join(baseDir, ref)
		}
		cat.Products[i].ImageRef = ref
	}
	return cat, nil
}

func (c Catalog) validate() error {
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		id := strings.TrimSpace(cat.ID)
		if id == "" {
			return errors.New("category with empty id")
		}
		if seen[id] {
			return fmt.Errorf("duplicate category %q", id)
		}
		seen[id] = true
	}
	for _, p := range c.Products {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("product with empty name")
		}
		if !seen[p.Category] {
			return fmt.Errorf("product %q references unknown category %q", p.Name, p.Category)
		}
	}
	return nil
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
