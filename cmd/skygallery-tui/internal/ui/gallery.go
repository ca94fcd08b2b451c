package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// createGalleryPanel creates the card table.
func (a *App) createGalleryPanel() {
	a.galleryTable = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	a.galleryTable.SetBorder(true).SetTitle(" Gallery - Press Enter for details ")

	a.galleryTable.SetSelectedStyle(tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorDarkCyan))

	a.setGalleryHeader()

	a.galleryTable.SetSelectedFunc(func(row, column int) {
		a.openCard(row - 1)
	})
}

func (a *App) setGalleryHeader() {
	headers := []string{"TITLE", "DATE", "PREVIEW"}
	for i, h := range headers {
		cell := tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1)
		if i == 0 {
			cell.SetExpansion(2)
		}
		a.galleryTable.SetCell(0, i, cell)
	}
}

// updateGalleryTable replaces every card row with the current gallery.
func (a *App) updateGalleryTable() {
	a.galleryTable.Clear()
	a.setGalleryHeader()

	if a.gallery.Empty() {
		a.galleryTable.SetCell(1, 0, tview.NewTableCell("No items in the feed").
			SetTextColor(tcell.ColorGray).
			SetSelectable(false))
		return
	}

	for _, card := range a.gallery.Cards {
		row := card.Index + 1
		for col, text := range cardRow(card) {
			cell := tview.NewTableCell(tview.Escape(text)).SetExpansion(1)
			if col == 0 {
				cell.SetExpansion(2)
			}
			if col == 2 && card.Placeholder != "" {
				cell.SetTextColor(tcell.ColorGray)
			}
			a.galleryTable.SetCell(row, col, cell)
		}
	}
	a.galleryTable.Select(1, 0)
}

// createDetailModal creates the modal that shows one card's details.
func (a *App) createDetailModal() {
	a.detailModal = tview.NewModal().
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.modal.Close()
			a.syncModal()
		})
}

// openCard opens the detail modal for the card at index.
func (a *App) openCard(index int) {
	if index < 0 || index >= len(a.gallery.Cards) {
		return
	}
	a.modal.Open(a.gallery.Cards[index].Detail)
	a.syncModal()
}

// syncModal shows or hides the detail page to match the modal state.
func (a *App) syncModal() {
	if a.modal.IsOpen() {
		a.detailModal.SetText(tview.Escape(detailText(a.modal.Content())))
		a.pages.ShowPage("detail")
		a.app.SetFocus(a.detailModal)
		return
	}
	a.pages.HidePage("detail")
	a.app.SetFocus(a.galleryTable)
}
