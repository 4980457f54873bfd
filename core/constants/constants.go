package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Token lifetimes
const (
	AccessTokenExpiry  = 24 * time.Hour
	RefreshTokenExpiry = 30 * 24 * time.Hour
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Redis keys and windows
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyLoginAttempt   = "login:attempt:"

	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// OAuth state
const (
	OAuthStateLength = 32
	OAuthStateExpiry = 10 * time.Minute
)

const DefaultTimeout = 5 * time.Second
