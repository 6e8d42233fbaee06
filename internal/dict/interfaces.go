package dict

import (
	"github.com/lexget/lexidict/internal/model"
)

// Corpus resolves a word to its senses. Implementations return (nil, nil)
// when the word is simply unknown, reserving errors for lookup failures.
type Corpus interface {
	Lookup(word string) ([]model.Sense, error)
}
