// File: utils/constants.go
package utils

import "time"

// JourneyCachePrefix is the prefix used for Redis journey dashboard cache keys.
const JourneyCachePrefix = "journey:"

// JourneyCacheTTL is the fallback time-to-live for journey cache entries
// when no TTL is configured.
const JourneyCacheTTL = 2 * time.Minute
