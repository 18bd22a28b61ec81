package usecasecontract

import "time"

// IConfigProvider exposes the application configuration values usecases and
// middleware depend on.
type IConfigProvider interface {
	GetAppBaseURL() string

	// Cache tuning.
	GetHomepageCacheTTL() time.Duration
	GetBlogDetailCacheTTL() time.Duration
	GetCategoryCacheTTL() time.Duration
	// GetCacheOpTimeout bounds every single cache store operation so a slow
	// or down cache degrades to pass-through instead of blocking requests.
	GetCacheOpTimeout() time.Duration

	// Token lifetimes.
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}
