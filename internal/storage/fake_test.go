package storage

import (
	"context"
	"errors"
	"sync"
)

type kvEntry struct {
	kind string
	i    int
	f    float64
	s    string
}

// fakeKV is an in-memory KeyValueStore.
type fakeKV struct {
	mu      sync.Mutex
	entries map[string]kvEntry
	failPut error
}

func newFakeKV() *fakeKV {
	return &fakeKV{entries: make(map[string]kvEntry)}
}

func (f *fakeKV) get(key string, kind string) (kvEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok || e.kind != kind {
		return kvEntry{}, false
	}
	return e, true
}

func (f *fakeKV) put(key string, e kvEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut != nil {
		return f.failPut
	}
	f.entries[key] = e
	return nil
}

func (f *fakeKV) GetInt(_ context.Context, key string) (int, bool, error) {
	e, ok := f.get(key, "int")
	return e.i, ok, nil
}

func (f *fakeKV) PutInt(_ context.Context, key string, value int) error {
	return f.put(key, kvEntry{kind: "int", i: value})
}

func (f *fakeKV) GetString(_ context.Context, key string) (string, bool, error) {
	e, ok := f.get(key, "string")
	return e.s, ok, nil
}

func (f *fakeKV) PutString(_ context.Context, key string, value string) error {
	return f.put(key, kvEntry{kind: "string", s: value})
}

func (f *fakeKV) GetFloat(_ context.Context, key string) (float64, bool, error) {
	e, ok := f.get(key, "float")
	return e.f, ok, nil
}

func (f *fakeKV) PutFloat(_ context.Context, key string, value float64) error {
	return f.put(key, kvEntry{kind: "float", f: value})
}

func (f *fakeKV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeKV) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}

var errBoom = errors.New("boom")
