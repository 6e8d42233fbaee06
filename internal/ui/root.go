package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/lexget/lexidict/internal/config"
	"github.com/lexget/lexidict/internal/dict"
	"github.com/lexget/lexidict/internal/model"
	"github.com/lexget/lexidict/internal/platform"
)

// UI text constants
const (
	SearchPlaceholder     = "Enter a word"
	SearchButtonLabel     = "Search"
	NoDefinitionsText     = "No definitions found."
	LookupFailedFormat    = "Lookup failed: %v"
	FileMenuLabel         = "File"
	OpenDictionariesLabel = "Open Dictionaries Folder"
)

// RootUI is the main dictionary window: a search entry with completion from
// cached words, a search button and the rendered definition area.
type RootUI struct {
	window fyne.Window

	searchEntry *widget.SelectEntry
	searchBtn   *widget.Button
	resultText  *widget.Label

	dictSvc  *dict.Service
	settings *config.Settings
	logger   *log.Logger
}

// NewRootUI creates and initializes the main window content.
func NewRootUI(window fyne.Window, dictSvc *dict.Service, settings *config.Settings, logger *log.Logger) *RootUI {
	ui := &RootUI{
		window:   window,
		dictSvc:  dictSvc,
		settings: settings,
		logger:   logger,
	}
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components.
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewSelectEntry(ui.dictSvc.Words())
	ui.searchEntry.SetPlaceHolder(SearchPlaceholder)
	ui.searchEntry.OnChanged = ui.onTextChanged
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(SearchButtonLabel, ui.onSearchClick)

	ui.resultText = widget.NewLabel("")
	ui.resultText.Wrapping = fyne.TextWrapWord

	topPanel := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)
	content := container.NewBorder(
		topPanel,
		nil,
		nil,
		nil,
		container.NewVScroll(ui.resultText),
	)

	ui.window.SetContent(content)
}

// createMenu builds the application menu. The dictionaries entry opens the
// folder the corpus is loaded from, so users can drop dictionary files in.
func (ui *RootUI) createMenu() {
	dictsItem := fyne.NewMenuItem(OpenDictionariesLabel, func() {
		dir := ui.settings.GetDictionaryDirectory()
		if err := platform.RevealInFileManager(dir); err != nil {
			ui.logger.Error("failed to open dictionaries folder", "dir", dir, "error", err)
		}
	})

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(FileMenuLabel, dictsItem),
	))
}

// onTextChanged renders cached words immediately as the user types. The
// search button stays disabled while the shown text is already cached, so
// clicking it never repeats a lookup the cache just answered.
func (ui *RootUI) onTextChanged(text string) {
	word := strings.TrimSpace(text)
	if senses, ok := ui.dictSvc.Cached(word); ok {
		ui.resultText.SetText(formatSenses(senses))
		ui.searchBtn.Disable()
		return
	}
	ui.searchBtn.Enable()
}

// onSearchClick runs the lookup in the background and renders the result on
// the Fyne goroutine.
func (ui *RootUI) onSearchClick() {
	word := strings.TrimSpace(ui.searchEntry.Text)
	if word == "" {
		return
	}

	ui.searchBtn.Disable()

	go func() {
		senses, err := ui.dictSvc.Lookup(word)

		fyne.Do(func() {
			ui.searchBtn.Enable()

			if err != nil {
				ui.logger.Error("lookup failed", "word", word, "error", err)
				ui.resultText.SetText(fmt.Sprintf(LookupFailedFormat, err))
				return
			}
			if len(senses) == 0 {
				ui.resultText.SetText(NoDefinitionsText)
				return
			}

			ui.resultText.SetText(formatSenses(senses))
			ui.searchEntry.SetOptions(ui.dictSvc.Words())
			ui.searchBtn.Disable()
		})
	}()
}

// formatSenses renders senses as a numbered list, one definition per entry
// with its examples indented underneath.
func formatSenses(senses []model.Sense) string {
	var b strings.Builder
	for i, sense := range senses {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, sense.Definition)
		for _, example := range sense.Examples {
			fmt.Fprintf(&b, "    - %s\n", example)
		}
	}
	return b.String()
}
