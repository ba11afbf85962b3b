package usecase

import (
	"context"
	"fmt"
)

// Ключи кэша каталога.
const (
	KeyCategories      = "categories"
	KeyProgressStats   = "progress_stats"
	KeyDeliveryAddress = "delivery_address"
	keyProductsPrefix  = "products_"
	keyProductsAll     = keyProductsPrefix + "all"
)

// ProductsKey — ключ списка продуктов категории; пустой categoryID — весь каталог.
func ProductsKey(categoryID string) string {
	if categoryID == "" {
		return keyProductsAll
	}
	return keyProductsPrefix + categoryID
}

// QueryCache — кэш, через который идут запросы к каталогу (memory.TTLCache[any]).
type QueryCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	Clear()
}

// CachedQuery — значение из кэша либо результат fetch с записью в кэш.
// Ошибки не кэшируются; одновременные промахи по одному ключу вызывают fetch независимо.
func CachedQuery[V any](ctx context.Context, cache QueryCache, key string, fetch func(context.Context) (V, error)) (V, error) {
	if raw, ok := cache.Get(key); ok {
		if v, ok := raw.(V); ok {
			return v, nil
		}
		// под ключом лежит значение другого типа — считаем промахом
		cache.Delete(key)
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("fetch %s: %w", key, err)
	}
	cache.Set(key, v)
	return v, nil
}

// Revalidate — сбрасывает ключ и сразу перечитывает значение в кэш.
// При ошибке fetch ключ остаётся пустым, следующий CachedQuery повторит запрос.
func Revalidate[V any](ctx context.Context, cache QueryCache, key string, fetch func(context.Context) (V, error)) error {
	cache.Delete(key)
	_, err := CachedQuery(ctx, cache, key, fetch)
	return err
}

// invalidateReservationKeys — ключи, зависящие от статуса резервации продуктов категории.
func invalidateReservationKeys(cache QueryCache, categoryID string) {
	cache.Delete(ProductsKey(categoryID))
	cache.Delete(ProductsKey(""))
	cache.Delete(KeyProgressStats)
}
