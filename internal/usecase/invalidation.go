package usecase

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// Cache key namespaces. The read middleware prefixes every key it stores with
// one of these, and the invalidator clears whole namespaces with a pattern
// delete. Listing namespaces are cleared wholesale on any blog write: the
// over-invalidation is deliberate, correctness is preferred over hit rate.
const (
	CacheNamespaceHomepage = "homepage"
	CacheNamespaceBlog     = "blog"
	CacheNamespaceCategory = "category"
)

// BlogDetailCacheKey is the cache key of a blog's detail view.
func BlogDetailCacheKey(slug string) string {
	return CacheNamespaceBlog + ":" + slug
}

// CacheInvalidator removes cache entries made stale by writes. Every method
// is best effort: a failed delete is logged and otherwise ignored, because
// the cache is never the source of truth and entries expire by TTL anyway.
// A nil store disables invalidation entirely (caching turned off).
type CacheInvalidator struct {
	store  contract.ICacheStore
	logger usecasecontract.IAppLogger
}

// NewCacheInvalidator creates a CacheInvalidator. store may be nil.
func NewCacheInvalidator(store contract.ICacheStore, logger usecasecontract.IAppLogger) *CacheInvalidator {
	return &CacheInvalidator{store: store, logger: logger}
}

// InvalidateBlog clears every cached view that can embed the blog: its
// detail entry plus the homepage and category listing namespaces. Comment and
// reply writes funnel through here too, since the detail view embeds the full
// comment tree.
func (ci *CacheInvalidator) InvalidateBlog(ctx context.Context, slug string) {
	if ci == nil || ci.store == nil {
		return
	}
	// Detach from request cancellation: the write already happened, so the
	// invalidation must run even if the client went away.
	ctx = context.WithoutCancel(ctx)

	if slug != "" {
		if err := ci.store.Delete(ctx, BlogDetailCacheKey(slug)); err != nil {
			ci.logger.Warnf("cache: failed to invalidate blog detail '%s': %v", slug, err)
		}
	}
	ci.invalidateNamespace(ctx, CacheNamespaceHomepage)
	ci.invalidateNamespace(ctx, CacheNamespaceCategory)
}

// InvalidateListings clears the homepage and category namespaces without
// touching any detail entry.
func (ci *CacheInvalidator) InvalidateListings(ctx context.Context) {
	if ci == nil || ci.store == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	ci.invalidateNamespace(ctx, CacheNamespaceHomepage)
	ci.invalidateNamespace(ctx, CacheNamespaceCategory)
}

func (ci *CacheInvalidator) invalidateNamespace(ctx context.Context, namespace string) {
	if err := ci.store.DeletePattern(ctx, namespace+":*"); err != nil {
		ci.logger.Warnf("cache: failed to invalidate namespace '%s': %v", namespace, err)
	}
}
