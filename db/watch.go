package db

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lucaskalb/choicex/choice"
)

// CachedDB wraps another DB with an in-memory read-through cache kept
// coherent by watching dir for writes from other processes — spec.md
// §5's "readers tolerate concurrent writers" made concrete for a
// long-lived reader sitting alongside a test run that is actively
// persisting failures. cmd/choicexctl does not use it; each of its
// commands opens a plain FileDB.
type CachedDB struct {
	inner   DB
	watcher *fsnotify.Watcher

	mu    sync.RWMutex
	cache map[string]choice.Attempt
	known map[string]bool // key present vs known-absent, to cache negative lookups too
}

// NewCachedDB wraps inner, watching dir for filesystem events that
// invalidate the cache. Close stops the watcher goroutine.
func NewCachedDB(inner DB, dir string) (*CachedDB, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	c := &CachedDB{
		inner:   inner,
		watcher: w,
		cache:   make(map[string]choice.Attempt),
		known:   make(map[string]bool),
	}
	go c.watch()
	return c, nil
}

func (c *CachedDB) watch() {
	for {
		select {
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			key := unsanitizeKey(baseName(ev.Name))
			c.mu.Lock()
			delete(c.cache, key)
			delete(c.known, key)
			c.mu.Unlock()
		case _, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}

// Close stops watching the filesystem. It does not close the
// underlying DB.
func (c *CachedDB) Close() error {
	return c.watcher.Close()
}

func (c *CachedDB) List() ([]string, error) {
	return c.inner.List()
}

func (c *CachedDB) Put(key string, a choice.Attempt) error {
	if err := c.inner.Put(key, a); err != nil {
		return err
	}
	c.mu.Lock()
	c.cache[key] = a.Clone()
	c.known[key] = true
	c.mu.Unlock()
	return nil
}

func (c *CachedDB) Delete(key string) error {
	if err := c.inner.Delete(key); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.cache, key)
	delete(c.known, key)
	c.mu.Unlock()
	return nil
}

func (c *CachedDB) Get(key string) (choice.Attempt, bool, error) {
	c.mu.RLock()
	if c.known[key] {
		a, cached := c.cache[key]
		c.mu.RUnlock()
		return a, cached, nil
	}
	c.mu.RUnlock()

	a, ok, err := c.inner.Get(key)
	if err != nil {
		return choice.Attempt{}, false, err
	}
	c.mu.Lock()
	c.known[key] = true
	if ok {
		c.cache[key] = a
	}
	c.mu.Unlock()
	return a, ok, nil
}
