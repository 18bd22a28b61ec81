package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	HomepageCacheTTL   time.Duration
	BlogDetailCacheTTL time.Duration
	CategoryCacheTTL   time.Duration
	CacheOpTimeout     time.Duration
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		HomepageCacheTTL:   time.Second * time.Duration(getEnvAsInt("HOMEPAGE_CACHE_TTL_SECONDS", 300)),
		BlogDetailCacheTTL: time.Second * time.Duration(getEnvAsInt("BLOG_DETAIL_CACHE_TTL_SECONDS", 600)),
		CategoryCacheTTL:   time.Second * time.Duration(getEnvAsInt("CATEGORY_CACHE_TTL_SECONDS", 600)),
		CacheOpTimeout:     time.Millisecond * time.Duration(getEnvAsInt("CACHE_OP_TIMEOUT_MS", 250)),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetHomepageCacheTTL returns the TTL for cached homepage payloads.
func (c *Config) GetHomepageCacheTTL() time.Duration {
	return c.HomepageCacheTTL
}

// GetBlogDetailCacheTTL returns the TTL for cached blog detail payloads.
func (c *Config) GetBlogDetailCacheTTL() time.Duration {
	return c.BlogDetailCacheTTL
}

// GetCategoryCacheTTL returns the TTL for cached category listings.
func (c *Config) GetCategoryCacheTTL() time.Duration {
	return c.CategoryCacheTTL
}

// GetCacheOpTimeout returns the per-operation timeout for the cache store.
func (c *Config) GetCacheOpTimeout() time.Duration {
	return c.CacheOpTimeout
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
