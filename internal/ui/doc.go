// Package ui contains the Fyne widgets for the main dictionary window and
// the update dialog. All state mutation happens on the Fyne goroutine;
// background services report in through callbacks wrapped in fyne.Do.
package ui
