package auth

import (
	"context"
	"net/http"

	"github.com/mirevo/shop-catalog-service/internal/model"
)

// ShopContext is the tenant context every request carries. The surrounding
// middleware is trusted to have validated it.
type ShopContext struct {
	ShopID   string
	Locale   model.Locale
	Currency string
}

type ctxKey int

const shopCtxKey ctxKey = 0

func WithShopContext(ctx context.Context, sc ShopContext) context.Context {
	return context.WithValue(ctx, shopCtxKey, sc)
}

func GetShopContext(ctx context.Context) ShopContext {
	if sc, ok := ctx.Value(shopCtxKey).(ShopContext); ok {
		return sc
	}
	return ShopContext{Locale: model.DefaultLocale}
}

func GetShopID(ctx context.Context) string {
	return GetShopContext(ctx).ShopID
}

// ShopContextMiddleware derives the tenant context from headers, with query
// fallbacks for storefront links.
func ShopContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc := ShopContext{
			ShopID:   r.Header.Get("X-Shop-Id"),
			Locale:   model.DefaultLocale,
			Currency: r.Header.Get("X-Currency"),
		}
		if sc.ShopID == "" {
			sc.ShopID = r.URL.Query().Get("shopId")
		}
		rawLocale := r.Header.Get("X-Locale")
		if rawLocale == "" {
			rawLocale = r.URL.Query().Get("locale")
		}
		if l, ok := model.ParseLocale(rawLocale); ok {
			sc.Locale = l
		}
		next.ServeHTTP(w, r.WithContext(WithShopContext(r.Context(), sc)))
	})
}
