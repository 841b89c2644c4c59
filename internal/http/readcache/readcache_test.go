package readcache_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/moneymap/internal/http/readcache"
)

func counting(status int, calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
}

func get(h http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	return rec
}

func TestCache_Cached(t *testing.T) {
	calls := 0
	cache := readcache.New(8, time.Hour)
	h := cache.Cached(counting(http.StatusOK, &calls))

	first := get(h, "/ledger?from=2023-01-01")
	second := get(h, "/ledger?from=2023-01-01")
	other := get(h, "/ledger?from=2023-02-01")

	assert.Equal(t, 2, calls)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.Equal(t, "MISS", other.Header().Get("X-Cache"))
}

func TestCache_ErrorsNotCached(t *testing.T) {
	calls := 0
	h := readcache.New(8, time.Hour).Cached(counting(http.StatusInternalServerError, &calls))

	get(h, "/statistics")
	get(h, "/statistics")

	assert.Equal(t, 2, calls)
}

func TestCache_InvalidateOnWrite(t *testing.T) {
	reads, writes := 0, 0
	cache := readcache.New(8, time.Hour)

	read := cache.Cached(counting(http.StatusOK, &reads))
	write := cache.Invalidate(counting(http.StatusCreated, &writes))
	rejected := cache.Invalidate(counting(http.StatusUnprocessableEntity, &writes))

	get(read, "/categories")
	get(read, "/categories")
	assert.Equal(t, 1, reads)

	rejected.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/import", nil))
	get(read, "/categories")
	assert.Equal(t, 1, reads, "failed writes keep the cache")

	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/import", nil))
	get(read, "/categories")
	assert.Equal(t, 2, reads)
}

func TestCache_Expires(t *testing.T) {
	calls := 0
	h := readcache.New(8, 10*time.Millisecond).Cached(counting(http.StatusOK, &calls))

	get(h, "/categories")
	time.Sleep(30 * time.Millisecond)
	get(h, "/categories")

	assert.Equal(t, 2, calls)
}
