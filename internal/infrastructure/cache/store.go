package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// IngredientStore is the two-tier ingredient cache: a process-lifetime
// in-memory map in front of one JSON file per ingredient id under dir.
// Files are written via temp-file-then-rename so a crash mid-write never
// leaves a partial record, and they are never deleted.
type IngredientStore struct {
	dir string

	mu  sync.RWMutex
	mem map[string]*domain.Ingredient
}

// NewIngredientStore creates the store, creating the cache directory if it
// does not exist yet.
func NewIngredientStore(dir string) (*IngredientStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	return &IngredientStore{
		dir: dir,
		mem: make(map[string]*domain.Ingredient),
	}, nil
}

// Get consults the memory tier only.
func (s *IngredientStore) Get(id string) (*domain.Ingredient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ing, ok := s.mem[id]
	return ing, ok
}

// Load reads the disk record for id and promotes it into the memory tier.
// A missing or zero-length file is a miss. An undecodable record is logged
// and treated as a miss so a fresh fetch overwrites it.
func (s *IngredientStore) Load(id string) (*domain.Ingredient, error) {
	path := s.recordPath(id)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("reading cache record %s: %w", id, err)
	}
	if info.Size() == 0 {
		return nil, domain.ErrCacheMiss
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache record %s: %w", id, err)
	}

	var ing domain.Ingredient
	if err := json.Unmarshal(data, &ing); err != nil {
		log.Printf("[cache] discarding corrupt record %s: %v", id, err)
		return nil, domain.ErrCacheMiss
	}

	s.mu.Lock()
	s.mem[id] = &ing
	s.mu.Unlock()

	return &ing, nil
}

// Put persists the ingredient to disk and then publishes it to the memory
// tier. The disk write happens first: an ingredient only counts as resolved
// once it is durable.
func (s *IngredientStore) Put(ing *domain.Ingredient) error {
	if err := s.persist(ing); err != nil {
		return err
	}

	s.mu.Lock()
	s.mem[ing.ID] = ing
	s.mu.Unlock()

	return nil
}

// persist writes the record atomically: encode into a temp file in the same
// directory, then rename it over the final path.
func (s *IngredientStore) persist(ing *domain.Ingredient) error {
	tmp, err := os.CreateTemp(s.dir, ing.ID+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file for %s: %w", ing.ID, err)
	}

	if err := json.NewEncoder(tmp).Encode(ing); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding cache record %s: %w", ing.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache record %s: %w", ing.ID, err)
	}

	if err := os.Rename(tmp.Name(), s.recordPath(ing.ID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("committing cache record %s: %w", ing.ID, err)
	}
	return nil
}

// Size returns the number of ingredients in the memory tier.
func (s *IngredientStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mem)
}

func (s *IngredientStore) recordPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}
