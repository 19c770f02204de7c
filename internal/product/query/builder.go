// Package query translates the storefront's structured product filter into
// SQL conditions with named args, composable by the repository.
package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

const (
	CombineAnd = "and"
	CombineOr  = "or"

	DefaultPageSize = 20
)

type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// CategoryMatch selects by category membership. When Slugs is non-empty it
// takes precedence: slugs are resolved to ids and overwrite IDs.
type CategoryMatch struct {
	Type  string   `json:"type"` // "and" | "or"
	IDs   []string `json:"ids"`
	Slugs []string `json:"slugs"`
}

type AttributeMatch struct {
	AttributeID string      `json:"attributeId"`
	Value       interface{} `json:"value"`
}

type AttributeFilter struct {
	Type string           `json:"type"` // "and" | "or"
	List []AttributeMatch `json:"list"`
}

// Filter is the structured product filter. Absent sections are omitted from
// the predicate entirely.
type Filter struct {
	ShopID             string           `json:"-"`
	Price              *PriceRange      `json:"price"`
	Cats               *CategoryMatch   `json:"cats"`
	Attrs              *AttributeFilter `json:"attrs"`
	IsPromotionProduct *bool            `json:"isPromotionProduct"`
	Search             string           `json:"search"`
	Page               int              `json:"page"`
	PageSize           int              `json:"size"`
}

// Normalize coerces malformed paging inputs to defaults. Pages are 1-indexed.
func (f *Filter) Normalize() {
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.Page <= 0 {
		f.Page = 1
	}
}

// Predicate is the built query: AND-combined conditions plus their named
// args.
type Predicate struct {
	Conditions []string
	Args       map[string]interface{}
}

func (p *Predicate) WhereClause() string {
	if len(p.Conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.Conditions, " AND ")
}

// Build assembles the predicate. catSets carries pre-expanded category
// descendant sets: a single unioned set for "or", one set per top-level
// category for "and" (the product must then match inside every subtree
// independently).
func Build(f *Filter, locale model.Locale, catSets []map[string]struct{}) (*Predicate, error) {
	p := &Predicate{
		Conditions: []string{"shop_id = :shop_id"},
		Args:       map[string]interface{}{"shop_id": f.ShopID},
	}

	if f.Price != nil {
		if f.Price.Min != nil {
			p.Conditions = append(p.Conditions, "price >= :price_min")
			p.Args["price_min"] = *f.Price.Min
		}
		if f.Price.Max != nil {
			p.Conditions = append(p.Conditions, "price <= :price_max")
			p.Args["price_max"] = *f.Price.Max
		}
	}

	for i, set := range catSets {
		name := fmt.Sprintf("cats_%d", i)
		p.Conditions = append(p.Conditions, fmt.Sprintf("category_ids && :%s", name))
		p.Args[name] = pq.Array(sortedIDs(set))
	}

	if f.Attrs != nil && len(f.Attrs.List) > 0 {
		conds := make([]string, 0, len(f.Attrs.List))
		for i, match := range f.Attrs.List {
			fragment, err := attributeFragment(match, locale)
			if err != nil {
				return nil, err
			}
			name := fmt.Sprintf("attr_%d", i)
			conds = append(conds, fmt.Sprintf("attributes @> CAST(:%s AS jsonb)", name))
			p.Args[name] = fragment
		}
		if f.Attrs.Type == CombineOr && len(conds) > 1 {
			p.Conditions = append(p.Conditions, "("+strings.Join(conds, " OR ")+")")
		} else {
			p.Conditions = append(p.Conditions, conds...)
		}
	}

	if f.IsPromotionProduct != nil {
		p.Conditions = append(p.Conditions, "is_promotion_product = :is_promotion")
		p.Args["is_promotion"] = *f.IsPromotionProduct
	}

	if f.Search != "" {
		p.Conditions = append(p.Conditions, searchCondition())
		p.Args["search"] = "%" + escapeLike(f.Search) + "%"
	}

	return p, nil
}

// attributeFragment builds the jsonb containment fragment for one attribute
// match. A bare string value is matched at the requested locale's field; a
// number matches the numeric value directly.
func attributeFragment(match AttributeMatch, locale model.Locale) (string, error) {
	if match.AttributeID == "" {
		return "", apperr.Validation("attrs", "attributeId is required")
	}

	var value interface{}
	switch v := match.Value.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case string:
		value = map[string]string{string(locale): v}
	case map[string]interface{}:
		value = v
	default:
		return "", apperr.Validation("attrs", "unsupported attribute filter value")
	}

	fragment, err := json.Marshal([]map[string]interface{}{
		{"attributeId": match.AttributeID, "value": value},
	})
	if err != nil {
		return "", err
	}
	return string(fragment), nil
}

// searchCondition matches the search term as a case-insensitive substring
// across every locale of name and both descriptions, plus the sku.
func searchCondition() string {
	fields := []string{"sku"}
	for _, l := range model.AllLocales() {
		fields = append(fields,
			fmt.Sprintf("name->>'%s'", l),
			fmt.Sprintf("description->>'%s'", l),
			fmt.Sprintf("short_description->>'%s'", l),
		)
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" ILIKE :search")
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// escapeLike neutralizes LIKE metacharacters so the term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
