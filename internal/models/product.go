package models

import (
	"sort"
	"strings"
)

// ProductCategory represents a shop category
type ProductCategory string

const (
	CategoryClothing    ProductCategory = "clothing"
	CategoryAccessories ProductCategory = "accessories"
	CategorySupplements ProductCategory = "supplements"
	CategoryEquipment   ProductCategory = "equipment"
)

// Product represents a shop product. Products are owned by the external shop
// backend; this service only reads them.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"` // in cents
	Category    ProductCategory `json:"category"`
	Images      []string        `json:"images"`
	InStock     bool            `json:"in_stock"`
	Featured    bool            `json:"featured"`
	Sizes       []string        `json:"sizes"`
}

// Product sort orders
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
)

// ProductFilters describes the client-side shop filters: category equality,
// free-text substring match, inclusive price range and the two flags.
type ProductFilters struct {
	Category ProductCategory
	Query    string
	PriceMin *int
	PriceMax *int
	InStock  *bool
	Featured *bool
	SortBy   string
}

// FilterProducts applies the filters and sort order to an already-fetched
// product list. The whole list fits in memory; the result is recomputed from
// scratch on every call.
func FilterProducts(products []*Product, filters ProductFilters) []*Product {
	result := make([]*Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(filters.Query))

	for _, p := range products {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if filters.PriceMin != nil && p.Price < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && p.Price > *filters.PriceMax {
			continue
		}
		if filters.InStock != nil && p.InStock != *filters.InStock {
			continue
		}
		if filters.Featured != nil && p.Featured != *filters.Featured {
			continue
		}
		result = append(result, p)
	}

	switch filters.SortBy {
	case SortByName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	case SortByPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortByPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	}

	return result
}

// PriceInCurrency returns the price in euros as a float
func (p *Product) PriceInCurrency() float64 {
	return float64(p.Price) / 100.0
}

// ValidCategory reports whether the given category value is known
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryClothing, CategoryAccessories, CategorySupplements, CategoryEquipment:
		return true
	default:
		return false
	}
}
