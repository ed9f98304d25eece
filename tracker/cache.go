package tracker

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// cacheData defines the structured format for persisting lookups to disk.
type cacheData[T any] struct {
	Entries map[string]T `json:"entries"`
}

// cacher provides a thread-safe map view over a gache file.
type cacher[T any] struct {
	internal *gache.Cache[*cacheData[T]]
	mu       sync.RWMutex
}

func newCacher[T any](path string, lifetime time.Duration) *cacher[T] {
	return &cacher[T]{
		internal: gache.New[*cacheData[T]](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func normalizedKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// Get retrieves the value stored under k.
func (c *cacher[T]) Get(k string) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if v, ok := data.Entries[normalizedKey(k)]; ok {
		return mo.Some(v)
	}
	return mo.None[T]()
}

// Set stores v under k, starting a fresh file when the old one expired.
func (c *cacher[T]) Set(k string, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Entries == nil {
		data = &cacheData[T]{Entries: make(map[string]T)}
	}
	data.Entries[normalizedKey(k)] = v
	return c.internal.Set(data)
}

var (
	lookupCacher  *cacher[Tracker]
	failureCacher *cacher[bool]
	cachersOnce   sync.Once
)

func initCachers() {
	hours := viper.GetInt(key.TrackerCacheHours)
	if hours <= 0 {
		hours = 24
	}

	lookupCacher = newCacher[Tracker](where.Tracker(), time.Duration(hours)*time.Hour)
	failureCacher = newCacher[bool](filepath.Join(where.Cache(), "tracker_fail.json"), time.Minute)
}

// lookups caches results, misses included, for tracker.cache_hours.
func lookups() *cacher[Tracker] {
	cachersOnce.Do(initCachers)
	return lookupCacher
}

// failures remembers failed requests briefly so a flaky endpoint is not hammered.
func failures() *cacher[bool] {
	cachersOnce.Do(initCachers)
	return failureCacher
}
