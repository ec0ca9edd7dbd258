// Package storage persists form documents as JSON blobs in an object
// storage bucket, one object per form at "form/<slug>.json".
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"formloom/internal/form"
)

// ErrNotFound marks a missing object. Delete treats it as success;
// every other storage error propagates.
var ErrNotFound = errors.New("object not found")

const formPrefix = "form/"

// objectAPI is the narrow slice of an object-storage client the store
// needs. The MinIO client implements it; tests use an in-memory map.
type objectAPI interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Stat(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Remove(ctx context.Context, key string) error
}

// FormInfo is one row of the form listing.
type FormInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Store reads and writes whole-form documents keyed by slug id.
type Store struct {
	objects objectAPI
}

// NewStore wraps an object client. Use Connect for the MinIO-backed store.
func NewStore(objects objectAPI) *Store {
	return &Store{objects: objects}
}

func formKey(id string) string {
	return formPrefix + id + ".json"
}

// Save persists doc under the slug derived from name and returns the id.
// The document bytes are stored as given so a later Load round-trips
// byte-identically.
func (s *Store) Save(ctx context.Context, name string, doc []byte) (string, error) {
	id := form.SlugID(name)
	if id == "" {
		return "", fmt.Errorf("form name %q produces an empty id", name)
	}
	if err := s.objects.Put(ctx, formKey(id), doc); err != nil {
		return "", fmt.Errorf("save form %s: %w", id, err)
	}
	return id, nil
}

// Load returns the stored document, or nil when no form has that id.
func (s *Store) Load(ctx context.Context, id string) ([]byte, error) {
	doc, err := s.objects.Get(ctx, formKey(id))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load form %s: %w", id, err)
	}
	return doc, nil
}

// Exists reports whether a form document is stored under id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.objects.Stat(ctx, formKey(id))
	if err != nil {
		return false, fmt.Errorf("stat form %s: %w", id, err)
	}
	return ok, nil
}

// List returns id and display name for every stored form. A document
// whose name can't be read lists under its id so the UI still shows it.
func (s *Store) List(ctx context.Context) ([]FormInfo, error) {
	keys, err := s.objects.List(ctx, formPrefix)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	out := make([]FormInfo, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimSuffix(strings.TrimPrefix(key, formPrefix), ".json")
		if id == "" {
			continue
		}
		info := FormInfo{ID: id, Name: id}
		doc, err := s.objects.Get(ctx, key)
		if err != nil {
			log.Printf("list: read %s: %v", key, err)
			out = append(out, info)
			continue
		}
		var named struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(doc, &named); err == nil && named.Name != "" {
			info.Name = named.Name
		}
		out = append(out, info)
	}
	return out, nil
}

// Delete removes the form document. A missing key is success.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.objects.Remove(ctx, formKey(id))
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete form %s: %w", id, err)
	}
	return nil
}
