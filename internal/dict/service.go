package dict

import (
	"github.com/charmbracelet/log"

	"github.com/lexget/lexidict/internal/model"
)

// Service answers word lookups from the cache first, then the corpus,
// caching anything newly fetched. A nil corpus degrades to cache-only mode.
type Service struct {
	corpus Corpus
	store  *Store
	logger *log.Logger
}

// NewService creates a lookup service over the given corpus and store.
func NewService(corpus Corpus, store *Store, logger *log.Logger) *Service {
	return &Service{corpus: corpus, store: store, logger: logger}
}

// Lookup returns the senses for a word. A (nil, nil) result means the word
// has no definitions.
func (s *Service) Lookup(word string) ([]model.Sense, error) {
	if senses, ok := s.store.Get(word); ok {
		return senses, nil
	}

	if s.corpus == nil {
		s.logger.Warn("corpus unavailable, cache-only lookup missed", "word", word)
		return nil, nil
	}

	senses, err := s.corpus.Lookup(word)
	if err != nil {
		s.logger.Error("corpus lookup failed", "word", word, "error", err)
		return nil, err
	}
	if len(senses) == 0 {
		s.logger.Warn("no definitions found", "word", word)
		return nil, nil
	}

	if err := s.store.Add(word, senses); err != nil {
		// A cache write failure is not a lookup failure; the senses are
		// still served this session.
		s.logger.Error("failed to cache definitions", "word", word, "error", err)
	}
	return senses, nil
}

// Cached reports whether a word is already in the cache and its senses.
func (s *Service) Cached(word string) ([]model.Sense, bool) {
	return s.store.Get(word)
}

// Words returns all cached words for the search completer.
func (s *Service) Words() []string {
	return s.store.Words()
}
