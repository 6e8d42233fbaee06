package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lexget/lexidict/internal/update"
)

// Update dialog text constants
const (
	UpdateTitleFormat  = "Update to version %s"
	ForcedUpdateTitle  = "This version is discontinued"
	UpdateButtonLabel  = "Update"
	RestartButtonLabel = "Restart"
	SkipButtonLabel    = "Skip"
	ExitButtonLabel    = "Exit"
	DownloadingStatus  = "Downloading..."
	DownloadDoneStatus = "Download complete. Restart to apply."
)

// Changelog viewport sizing
const (
	ChangelogMinWidth  float32 = 420
	ChangelogMinHeight float32 = 240
)

// UpdateDialog presents a release changelog with download progress. It is
// wired only to Manager callbacks; the manager drives the download and the
// dialog just renders what it reports.
type UpdateDialog struct {
	window fyne.Window
	mgr    *update.Manager

	dlg         *dialog.CustomDialog
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	actionBtn   *widget.Button
	declineBtn  *widget.Button
}

// ShowUpdateDialog builds and shows the update dialog. When forced is true
// the decline button reads "Exit" and declining calls onDecline, which is
// expected to terminate the app; in the optional flow declining just closes
// the dialog.
func ShowUpdateDialog(window fyne.Window, mgr *update.Manager, forced bool, onDecline func()) *UpdateDialog {
	d := &UpdateDialog{
		window: window,
		mgr:    mgr,
	}

	title := fmt.Sprintf(UpdateTitleFormat, mgr.Version())
	if forced {
		title = ForcedUpdateTitle
	}

	changelog := widget.NewLabel(mgr.Changelog())
	changelog.Wrapping = fyne.TextWrapWord
	changelogScroll := container.NewVScroll(changelog)
	changelogScroll.SetMinSize(fyne.NewSize(ChangelogMinWidth, ChangelogMinHeight))

	d.progressBar = widget.NewProgressBar()
	d.progressBar.Hide()
	d.statusLabel = widget.NewLabel("")

	d.actionBtn = widget.NewButton(UpdateButtonLabel, d.onUpdateClick)
	d.actionBtn.Importance = widget.HighImportance

	declineLabel := SkipButtonLabel
	if forced {
		declineLabel = ExitButtonLabel
	}
	d.declineBtn = widget.NewButton(declineLabel, func() {
		d.dlg.Hide()
		if onDecline != nil {
			onDecline()
		}
	})

	content := container.NewVBox(
		changelogScroll,
		d.progressBar,
		d.statusLabel,
		container.NewHBox(d.declineBtn, d.actionBtn),
	)

	d.wireManager()

	d.dlg = dialog.NewCustomWithoutButtons(title, content, window)
	d.dlg.Show()
	return d
}

// wireManager subscribes to the manager's notifications. The worker reports
// from its own goroutine, so every UI touch goes through fyne.Do.
func (d *UpdateDialog) wireManager() {
	d.mgr.SetProgressCallback(func(percent int) {
		fyne.Do(func() {
			d.progressBar.SetValue(float64(percent) / 100)
		})
	})
	d.mgr.SetStatusCallback(func(message string) {
		fyne.Do(func() {
			d.onDownloadFailed(message)
		})
	})
	d.mgr.SetCompleteCallback(func() {
		fyne.Do(func() {
			d.onDownloadComplete()
		})
	})
}

// onDownloadFailed reports the terminal failure. The action button stays
// disabled: the manager's worker is single use with no retry, so the user's
// remaining options are the decline button or relaunching the app.
func (d *UpdateDialog) onDownloadFailed(message string) {
	d.statusLabel.SetText(message)
	d.progressBar.Hide()
}

// onDownloadComplete turns the action button into Restart.
func (d *UpdateDialog) onDownloadComplete() {
	d.statusLabel.SetText(DownloadDoneStatus)
	d.actionBtn.SetText(RestartButtonLabel)
	d.actionBtn.OnTapped = d.onRestartClick
	d.actionBtn.Enable()
}

// onUpdateClick starts the download. The button is disabled until the
// attempt reaches a terminal state; there is no cancellation.
func (d *UpdateDialog) onUpdateClick() {
	d.actionBtn.Disable()
	d.progressBar.Show()
	d.statusLabel.SetText(DownloadingStatus)
	d.mgr.StartUpdate()
}

// onRestartClick hands control back to the manager's restart observer.
func (d *UpdateDialog) onRestartClick() {
	d.mgr.CloseApplication()
}
