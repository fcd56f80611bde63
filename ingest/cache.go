// Package ingest - LevelDB-backed count cache.
//
// Counting a book-sized corpus is cheap; counting a multi-gigabyte one on
// every run is not. The cache stores gob-encoded corpus.Counts keyed by
// the SHA-256 of the corpus bytes and the alphabet, so any change to
// either invalidates the entry naturally.
package ingest

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/keydrift/keydrift/corpus"
)

// Cache is a persistent n-gram count store. Not safe for concurrent use
// by multiple processes; LevelDB holds an exclusive lock on the directory.
type Cache struct {
	db *leveldb.DB
}

// OpenCache opens (or creates) a cache under dir.
func OpenCache(dir string) (*Cache, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Close releases the underlying store.
func (c *Cache) Close() error { return c.db.Close() }

// CacheKey derives the cache key for a corpus body and alphabet.
func CacheKey(body []byte, ab *Alphabet) []byte {
	h := sha256.New()
	h.Write(body)
	h.Write([]byte{0})
	h.Write([]byte(ab.String()))

	return h.Sum(nil)
}

// Load fetches cached counts; found is false on a clean miss.
func (c *Cache) Load(key []byte) (counts *corpus.Counts, found bool, err error) {
	raw, err := c.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var out corpus.Counts
	if err = gob.NewDecoder(bytes.NewReader(raw)).Decode(&out); err != nil {
		return nil, false, err
	}

	return &out, true, nil
}

// Store persists counts under key.
func (c *Cache) Store(key []byte, counts *corpus.Counts) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(counts); err != nil {
		return err
	}

	return c.db.Put(key, buf.Bytes(), nil)
}

// CountCached counts body through the cache: a hit skips the scan, a miss
// counts and stores. A nil cache degrades to a plain count.
func CountCached(c *Cache, body []byte, ab *Alphabet) (*corpus.Counts, error) {
	if c == nil {
		return Count(bytes.NewReader(body), ab)
	}

	key := CacheKey(body, ab)
	if counts, found, err := c.Load(key); err != nil {
		return nil, err
	} else if found {
		return counts, nil
	}

	counts, err := Count(bytes.NewReader(body), ab)
	if err != nil {
		return nil, err
	}
	if err = c.Store(key, counts); err != nil {
		return nil, err
	}

	return counts, nil
}
