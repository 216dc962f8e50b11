package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// KeyValueStore is a typed key-value settings store.
//
// Each key holds one value of one type. Getters report ok=false when the
// key is absent or was written with a different type.
type KeyValueStore interface {
	GetInt(ctx context.Context, key string) (int, bool, error)
	PutInt(ctx context.Context, key string, value int) error
	GetString(ctx context.Context, key string) (string, bool, error)
	PutString(ctx context.Context, key string, value string) error
	GetFloat(ctx context.Context, key string) (float64, bool, error)
	PutFloat(ctx context.Context, key string, value float64) error
	Remove(ctx context.Context, key string) error
}

func getJSON(ctx context.Context, kv KeyValueStore, key string, dst any) (bool, error) {
	raw, ok, err := kv.GetString(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, kv KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.PutString(ctx, key, string(data)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func getKeys(ctx context.Context, kv KeyValueStore, key string) ([]string, error) {
	var keys []string
	if _, err := getJSON(ctx, kv, key, &keys); err != nil {
		return nil, err
	}
	out := keys[:0]
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out, nil
}

func removeAll(ctx context.Context, kv KeyValueStore, keys ...string) error {
	for _, key := range keys {
		if err := kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
