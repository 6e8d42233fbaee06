package dict

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lexget/lexidict/internal/model"
)

const cacheFilePermissions = 0o644

// Store persists the word definition cache as a single JSON document. The
// in-memory map is the authoritative working copy during a session and is
// flushed to disk after every insertion. Safe for concurrent use: lookups
// insert from a background goroutine while the UI goroutine reads the cache
// for live rendering and completion.
type Store struct {
	fs     afero.Fs
	path   string
	logger *log.Logger

	mu   sync.RWMutex
	defs model.Definitions
}

// NewStore creates a store backed by the given cache file.
func NewStore(fs afero.Fs, path string, logger *log.Logger) *Store {
	return &Store{
		fs:     fs,
		path:   path,
		defs:   model.Definitions{},
		logger: logger,
	}
}

// Load reads the cache file into memory. A missing or corrupt file starts
// the session from an empty cache.
func (s *Store) Load() model.Definitions {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		s.logger.Error("failed to read definitions", "error", err)
		s.defs = model.Definitions{}
		return s.defs
	}

	defs := model.Definitions{}
	if err := json.Unmarshal(data, &defs); err != nil {
		s.logger.Error("failed to decode definitions, starting empty", "error", err)
		defs = model.Definitions{}
	} else {
		s.logger.Info("definitions loaded", "words", len(defs))
	}

	s.defs = defs
	return s.defs
}

// Save writes the in-memory cache to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

// save writes the cache to disk. Callers must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.defs, "", "    ")
	if err != nil {
		return fmt.Errorf("encode definitions: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, cacheFilePermissions); err != nil {
		s.logger.Error("failed to write definitions", "error", err)
		return fmt.Errorf("write definitions: %w", err)
	}
	return nil
}

// Add inserts or overwrites a word's senses (last write wins, no merge) and
// flushes the cache immediately.
func (s *Store) Add(word string, senses []model.Sense) error {
	s.logger.Debug("adding definition", "word", word)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs[word] = senses
	return s.save()
}

// Get returns the cached senses for a word, keyed case-sensitively as typed.
func (s *Store) Get(word string) ([]model.Sense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	senses, ok := s.defs[word]
	return senses, ok
}

// Words returns all cached words sorted case-insensitively.
func (s *Store) Words() []string {
	s.mu.RLock()
	words := make([]string, 0, len(s.defs))
	for word := range s.defs {
		words = append(words, word)
	}
	s.mu.RUnlock()

	c := collate.New(language.Und, collate.IgnoreCase)
	c.SortStrings(words)
	return words
}

// Len returns the number of cached words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.defs)
}
