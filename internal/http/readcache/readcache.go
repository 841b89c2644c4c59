// Package readcache caches GET responses of the read endpoints until the
// next write.
package readcache

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type response struct {
	contentType string
	body        []byte
}

type Cache struct {
	lru *expirable.LRU[string, response]
}

func New(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, response](size, nil, ttl)}
}

// Cached serves repeated GET requests for the same URL from memory.
// Only 200 responses are stored.
func (c *Cache) Cached(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()

		if hit, ok := c.lru.Get(key); ok {
			w.Header().Set("Content-Type", hit.contentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(hit.body)

			return
		}

		var buf bytes.Buffer

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&buf)
		ww.Header().Set("X-Cache", "MISS")

		next.ServeHTTP(ww, r)

		if ww.Status() == http.StatusOK {
			c.lru.Add(key, response{contentType: ww.Header().Get("Content-Type"), body: buf.Bytes()})
		}
	})
}

// Invalidate purges the cache after every successful write request.
func (c *Cache) Invalidate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if r.Method != http.MethodGet && ww.Status() < http.StatusBadRequest {
			c.Purge()
		}
	})
}

func (c *Cache) Purge() {
	n := c.lru.Len()
	c.lru.Purge()
	slog.Debug("read cache purged", "entries", n)
}
