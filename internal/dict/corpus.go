package dict

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ianlewis/go-stardict"
	stardictdict "github.com/ianlewis/go-stardict/dict"
	"github.com/k3a/html2text"

	"github.com/lexget/lexidict/internal/model"
)

// StarDictCorpus answers lookups from every StarDict dictionary found under
// a directory. Dictionaries stay open for the process lifetime.
type StarDictCorpus struct {
	dicts  []*stardict.Stardict
	logger *log.Logger
}

// OpenCorpus scans dir recursively and opens every dictionary it finds.
// Individual unreadable dictionaries are skipped with a warning; an error is
// returned only when none could be opened.
func OpenCorpus(dir string, logger *log.Logger) (*StarDictCorpus, error) {
	dicts, errs := stardict.OpenAll(dir)
	for _, err := range errs {
		logger.Warn("skipping dictionary", "error", err)
	}
	if len(dicts) == 0 {
		return nil, fmt.Errorf("no dictionaries found under %s", dir)
	}

	for _, d := range dicts {
		logger.Info("dictionary loaded", "bookname", d.Bookname(), "words", d.WordCount())
	}
	return &StarDictCorpus{dicts: dicts, logger: logger}, nil
}

// Lookup collects matching senses across all open dictionaries, in
// dictionary order.
func (c *StarDictCorpus) Lookup(word string) ([]model.Sense, error) {
	c.logger.Debug("fetching definitions", "word", word)

	var senses []model.Sense
	for _, d := range c.dicts {
		entries, err := d.FullTextSearch(word)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", d.Bookname(), err)
		}
		for _, e := range entries {
			if sense, ok := senseFromEntry(e); ok {
				senses = append(senses, sense)
			}
		}
	}
	return senses, nil
}

// senseFromEntry converts one dictionary entry into a sense: the first line
// of the entry's rendered text is the definition, subsequent lines become
// examples. Non-text payloads (audio, images) are ignored.
func senseFromEntry(e *stardict.Entry) (model.Sense, bool) {
	var text strings.Builder
	for _, d := range e.Data() {
		switch d.Type() {
		case stardictdict.UTFTextType, stardictdict.PhoneticType, stardictdict.YinBiaoOrKataType:
			text.WriteString(string(d.Data()))
			text.WriteString("\n")
		case stardictdict.HTMLType:
			text.WriteString(html2text.HTML2Text(string(d.Data())))
			text.WriteString("\n")
		}
	}

	lines := splitLines(text.String())
	if len(lines) == 0 {
		return model.Sense{}, false
	}
	return model.Sense{
		Definition: lines[0],
		Examples:   lines[1:],
	}, true
}

// splitLines returns the trimmed non-empty lines of s.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
