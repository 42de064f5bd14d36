package constants

import "time"

const (
	CacheKeyAuthToken = "recipe:auth:token:%s" // %s -> token
)

const (
	CacheExpireAuthToken = 1 * time.Hour
)
