package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

func set(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestNormalize(t *testing.T) {
	f := &Filter{}
	f.Normalize()
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 1, f.Page)

	f = &Filter{Page: -3, PageSize: 0}
	f.Normalize()
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 1, f.Page)

	f = &Filter{Page: 4, PageSize: 50}
	f.Normalize()
	assert.Equal(t, 50, f.PageSize)
	assert.Equal(t, 4, f.Page)
}

func TestBuildShopScopeOnly(t *testing.T) {
	p, err := Build(&Filter{ShopID: "shop-1"}, model.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"shop_id = :shop_id"}, p.Conditions)
	assert.Equal(t, "shop-1", p.Args["shop_id"])
	assert.Equal(t, " WHERE shop_id = :shop_id", p.WhereClause())
}

func TestBuildPriceBounds(t *testing.T) {
	min, max := 10.0, 20.0

	p, err := Build(&Filter{ShopID: "s", Price: &PriceRange{Min: &min}}, model.LocaleEN, nil)
	require.NoError(t, err)
	assert.Contains(t, p.Conditions, "price >= :price_min")
	assert.NotContains(t, p.Conditions, "price <= :price_max")

	p, err = Build(&Filter{ShopID: "s", Price: &PriceRange{Min: &min, Max: &max}}, model.LocaleEN, nil)
	require.NoError(t, err)
	assert.Contains(t, p.Conditions, "price >= :price_min")
	assert.Contains(t, p.Conditions, "price <= :price_max")
	assert.Equal(t, 10.0, p.Args["price_min"])
	assert.Equal(t, 20.0, p.Args["price_max"])
}

func TestBuildCategorySets(t *testing.T) {
	t.Run("one condition per set", func(t *testing.T) {
		sets := []map[string]struct{}{set("a", "b"), set("c")}
		p, err := Build(&Filter{ShopID: "s"}, model.LocaleEN, sets)
		require.NoError(t, err)
		assert.Contains(t, p.Conditions, "category_ids && :cats_0")
		assert.Contains(t, p.Conditions, "category_ids && :cats_1")
	})

	t.Run("single unioned set gives one condition", func(t *testing.T) {
		p, err := Build(&Filter{ShopID: "s"}, model.LocaleEN, []map[string]struct{}{set("a", "b", "c")})
		require.NoError(t, err)
		count := 0
		for _, c := range p.Conditions {
			if strings.Contains(c, "category_ids &&") {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestBuildAttributeFilter(t *testing.T) {
	t.Run("and emits separate conditions", func(t *testing.T) {
		f := &Filter{ShopID: "s", Attrs: &AttributeFilter{
			Type: CombineAnd,
			List: []AttributeMatch{
				{AttributeID: "attr-1", Value: 2.0},
				{AttributeID: "attr-2", Value: "Red"},
			},
		}}
		p, err := Build(f, model.LocaleZhHant, nil)
		require.NoError(t, err)
		assert.Contains(t, p.Conditions, "attributes @> CAST(:attr_0 AS jsonb)")
		assert.Contains(t, p.Conditions, "attributes @> CAST(:attr_1 AS jsonb)")
		assert.JSONEq(t, `[{"attributeId":"attr-1","value":2}]`, p.Args["attr_0"].(string))
		// Bare string matches at the requested locale.
		assert.JSONEq(t, `[{"attributeId":"attr-2","value":{"zhHant":"Red"}}]`, p.Args["attr_1"].(string))
	})

	t.Run("or wraps in one grouped condition", func(t *testing.T) {
		f := &Filter{ShopID: "s", Attrs: &AttributeFilter{
			Type: CombineOr,
			List: []AttributeMatch{
				{AttributeID: "attr-1", Value: 1.0},
				{AttributeID: "attr-2", Value: 2.0},
			},
		}}
		p, err := Build(f, model.LocaleEN, nil)
		require.NoError(t, err)
		grouped := false
		for _, c := range p.Conditions {
			if strings.HasPrefix(c, "(") && strings.Contains(c, " OR ") {
				grouped = true
			}
		}
		assert.True(t, grouped)
	})

	t.Run("missing attributeId rejected", func(t *testing.T) {
		f := &Filter{ShopID: "s", Attrs: &AttributeFilter{
			Type: CombineAnd,
			List: []AttributeMatch{{Value: 1.0}},
		}}
		_, err := Build(f, model.LocaleEN, nil)
		assert.Error(t, err)
	})

	t.Run("unsupported value rejected", func(t *testing.T) {
		f := &Filter{ShopID: "s", Attrs: &AttributeFilter{
			Type: CombineAnd,
			List: []AttributeMatch{{AttributeID: "attr-1", Value: []string{"x"}}},
		}}
		_, err := Build(f, model.LocaleEN, nil)
		assert.Error(t, err)
	})
}

func TestBuildPromotionFlag(t *testing.T) {
	promo := true
	p, err := Build(&Filter{ShopID: "s", IsPromotionProduct: &promo}, model.LocaleEN, nil)
	require.NoError(t, err)
	assert.Contains(t, p.Conditions, "is_promotion_product = :is_promotion")
	assert.Equal(t, true, p.Args["is_promotion"])
}

func TestBuildSearch(t *testing.T) {
	p, err := Build(&Filter{ShopID: "s", Search: "50%_off"}, model.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, `%50\%\_off%`, p.Args["search"])

	last := p.Conditions[len(p.Conditions)-1]
	assert.Contains(t, last, "sku ILIKE :search")
	assert.Contains(t, last, "name->>'en' ILIKE :search")
	assert.Contains(t, last, "short_description->>'zhHans' ILIKE :search")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
