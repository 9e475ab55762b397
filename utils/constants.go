// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// VerifyTokenPrefix is the prefix for email verification token keys.
const VerifyTokenPrefix = "verify:"

// VerifyTokenTTL is the time-to-live for email verification tokens.
const VerifyTokenTTL = 24 * time.Hour
