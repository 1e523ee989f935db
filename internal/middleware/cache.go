package middleware

// cache.go implements a redis-backed response cache for the four entity
// list endpoints.  The admin console reloads all collections after every
// mutation, so cached list bodies must never outlive a write.  List
// bodies embed denormalized names from other entities (a role carries its
// hospital's name, a doctor its user's), so a successful non-GET request
// drops the cached entries of all four groups, not just its own, before
// the fresh reload arrives.

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/config"
)

// bodyCapture tees the response body so a successful list response can be
// stored after it has been sent to the client.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if w.buf.Len()+len(b) <= w.limit {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// cacheKey maps a request to its cache entry.  The key is derived from the
// route group (first path segment under /v1).
func cacheKey(cfg config.CacheConfig, path string) string {
	group := strings.TrimPrefix(path, "/v1/")
	if i := strings.IndexByte(group, '/'); i >= 0 {
		group = group[:i]
	}
	return cfg.Prefix + ":" + group
}

// entityGroups are the cached route groups under /v1.
var entityGroups = [...]string{"hospitals", "roles", "users", "doctors"}

// invalidationKeys returns the cache keys of every entity group.  Renaming
// a hospital changes the hospital_name embedded in role and doctor list
// bodies, so a write to one group must drop them all.
func invalidationKeys(cfg config.CacheConfig) []string {
	keys := make([]string, len(entityGroups))
	for i, g := range entityGroups {
		keys[i] = cfg.Prefix + ":" + g
	}
	return keys
}

// ListCache returns an Echo middleware that caches GET list responses in
// redis for cfg.TTL and invalidates every group's entry on any successful
// mutation.  With a nil redis client or caching disabled the middleware is
// a pass-through.
func ListCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := cacheKey(cfg, req.URL.Path)
			rctx, cancel := context.WithTimeout(req.Context(), 500*time.Millisecond)
			defer cancel()

			if req.Method == http.MethodGet {
				// Only bare list requests are cached; detail routes carry an id segment.
				if strings.Count(strings.Trim(req.URL.Path, "/"), "/") > 1 {
					return next(c)
				}
				if body, err := rdb.Get(rctx, key).Bytes(); err == nil {
					return c.JSONBlob(http.StatusOK, body)
				}
				cw := &bodyCapture{ResponseWriter: c.Response().Writer, limit: cfg.MaxBodyBytes}
				c.Response().Writer = cw
				if err := next(c); err != nil {
					return err
				}
				if cw.status == 0 || cw.status == http.StatusOK {
					if cw.buf.Len() > 0 {
						_ = rdb.Set(context.Background(), key, cw.buf.Bytes(), cfg.TTL).Err()
					}
				}
				return nil
			}

			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status < http.StatusBadRequest {
				_ = rdb.Del(context.Background(), invalidationKeys(cfg)...).Err()
			}
			return nil
		}
	}
}
