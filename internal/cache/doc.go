// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiration.

It backs the recommendation result cache and the in-memory poster cache.
Entries expire lazily on access; CleanupExpired can be called periodically
to reclaim memory held by entries that are never read again.

	c := cache.NewLRU[string, recommend.Result](512, 10*time.Minute)
	c.Add(key, result)
	if r, ok := c.Get(key); ok {
	    return r
	}
*/
package cache
