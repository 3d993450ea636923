// Package repository defines the key-value persistence boundary and the
// typed stores for the overlay layers: custom entities, base overrides,
// custom rules, and tier data. Each store serializes its whole value as one
// JSON document under a fixed key; a missing or corrupt value degrades to
// the empty layer rather than failing reads.
package repository

import (
	"context"
	"encoding/json"

	"github.com/krit/mlbb-counter-website/internal/domain"
)

// ListStore persists an append-ordered list of T under one key, with
// index-addressed updates the way the admin surface edits custom layers.
type ListStore[T any] struct {
	kv  KVStore
	key string
}

func NewListStore[T any](kv KVStore, key string) *ListStore[T] {
	return &ListStore[T]{kv: kv, key: key}
}

// Get returns the stored list, or an empty list when the key is absent or
// the stored value does not parse.
func (s *ListStore[T]) Get(ctx context.Context) ([]T, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return []T{}, nil
	}
	return list, nil
}

// Save replaces the stored list.
func (s *ListStore[T]) Save(ctx context.Context, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}

// Add appends one element and returns the resulting list.
func (s *ListStore[T]) Add(ctx context.Context, v T) ([]T, error) {
	list, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	list = append(list, v)
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateAt replaces the element at index and returns the resulting list.
func (s *ListStore[T]) UpdateAt(ctx context.Context, index int, v T) ([]T, error) {
	list, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, domain.ErrIndexOutOfRange
	}
	list[index] = v
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteAt removes the element at index and returns the resulting list.
func (s *ListStore[T]) DeleteAt(ctx context.Context, index int) ([]T, error) {
	list, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(list) {
		return nil, domain.ErrIndexOutOfRange
	}
	list = append(list[:index], list[index+1:]...)
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Reset clears the stored list back to empty.
func (s *ListStore[T]) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}

// MapStore persists a map keyed by entity id under one key, the shape of
// the base override layers.
type MapStore[T any] struct {
	kv  KVStore
	key string
}

func NewMapStore[T any](kv KVStore, key string) *MapStore[T] {
	return &MapStore[T]{kv: kv, key: key}
}

// Get returns the stored map, or an empty map when the key is absent or
// the stored value does not parse.
func (s *MapStore[T]) Get(ctx context.Context) (map[string]T, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]T{}, nil
	}
	var m map[string]T
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]T{}, nil
	}
	if m == nil {
		m = map[string]T{}
	}
	return m, nil
}

// Save replaces the stored map.
func (s *MapStore[T]) Save(ctx context.Context, m map[string]T) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}

// Set stores the entry for id and returns the resulting map.
func (s *MapStore[T]) Set(ctx context.Context, id string, v T) (map[string]T, error) {
	m, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	m[id] = v
	if err := s.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Remove deletes the entry for id and returns the resulting map.
func (s *MapStore[T]) Remove(ctx context.Context, id string) (map[string]T, error) {
	m, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	delete(m, id)
	if err := s.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset clears the stored map back to empty.
func (s *MapStore[T]) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}

// ValueStore persists a single JSON document under one key.
type ValueStore[T any] struct {
	kv  KVStore
	key string
}

func NewValueStore[T any](kv KVStore, key string) *ValueStore[T] {
	return &ValueStore[T]{kv: kv, key: key}
}

// Get returns the stored value; ok is false when the key is absent or the
// stored value does not parse.
func (s *ValueStore[T]) Get(ctx context.Context) (T, bool, error) {
	var v T
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return v, false, err
	}
	if len(raw) == 0 {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

// Save replaces the stored value.
func (s *ValueStore[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}

// Reset removes the stored value.
func (s *ValueStore[T]) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}
