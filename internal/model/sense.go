package model

// Sense is one definition-and-examples record for a word, corresponding to
// one meaning in the corpus.
type Sense struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// Definitions maps a word, case-sensitive as typed, to its ordered senses.
type Definitions map[string][]Sense
