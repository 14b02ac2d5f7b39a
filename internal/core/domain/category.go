package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wallet_api/internal/apperrors"
)

// IncomeCategory is the only category an income transaction may carry.
// It is never part of a Catalog.
const IncomeCategory = "Income"

// Category is one entry of the expense catalog.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DefaultCategories is the catalog used when no override is configured.
var DefaultCategories = []Category{
	{Name: "Main expenses", Color: "#FED057"},
	{Name: "Food", Color: "#FFD8D0"},
	{Name: "Car", Color: "#FD9498"},
	{Name: "Self care", Color: "#C5BAFF"},
	{Name: "Child care", Color: "#6E78E8"},
	{Name: "Household products", Color: "#4A56E2"},
	{Name: "Education", Color: "#81E1FF"},
	{Name: "Leisure", Color: "#24CCA7"},
	{Name: "Other expenses", Color: "#00AD84"},
	{Name: "Entertainment", Color: "#FF6596"},
}

// Catalog is the closed, ordered set of expense categories.
// It is immutable once built and safe for concurrent reads.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// NewCatalog copies categories into a Catalog. Names must be unique, non-empty
// and must not collide with IncomeCategory.
func NewCatalog(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: catalog needs at least one category", apperrors.ErrValidation)
	}
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		cat.Name = strings.TrimSpace(cat.Name)
		cat.Color = strings.TrimSpace(cat.Color)
		switch {
		case cat.Name == "":
			return nil, fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidation)
		case cat.Name == IncomeCategory:
			return nil, fmt.Errorf("%w: %q is reserved for income", apperrors.ErrValidation, IncomeCategory)
		}
		if _, dup := c.index[cat.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", apperrors.ErrValidation, cat.Name)
		}
		c.index[cat.Name] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// DefaultCatalog returns a catalog built from DefaultCategories.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCategories)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog reads "Name=#color,Other name,Third=#abc" into a Catalog.
// Colors are optional.
func ParseCatalog(spec string) (*Catalog, error) {
	var categories []Category
	for _, part := range strings.Split(spec, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		name, color, _ := strings.Cut(part, "=")
		categories = append(categories, Category{Name: name, Color: color})
	}
	return NewCatalog(categories)
}

// Len is the number of expense categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Categories returns the catalog entries in order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Names returns the category names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Contains reports whether name is an expense category of the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Lookup returns the catalog entry for name.
func (c *Catalog) Lookup(name string) (Category, bool) {
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// ResolveCategory returns the category a transaction must be stored with.
// Income always maps to IncomeCategory; expenses need a catalog category.
func (c *Catalog) ResolveCategory(isIncome bool, category string) (string, error) {
	if isIncome {
		return IncomeCategory, nil
	}
	category = strings.TrimSpace(category)
	switch {
	case category == "":
		return "", fmt.Errorf("%w: category is required for expenses", apperrors.ErrValidation)
	case category == IncomeCategory:
		return "", fmt.Errorf("%w: category %q requires isIncome to be true", apperrors.ErrValidation, IncomeCategory)
	case !c.Contains(category):
		return "", fmt.Errorf("%w: invalid category %q, valid categories are: %s",
			apperrors.ErrValidation, category, strings.Join(c.Names(), ", "))
	}
	return category, nil
}
