// Package ui provides the terminal user interface for skygallery.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/iconidentify/skygallery/cmd/skygallery-tui/internal/config"
	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/internal/view"
)

// App is the main TUI application.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	cfg    *config.Config
	svc    *service.GalleryService
	ctx    context.Context
	cancel context.CancelFunc

	// UI components
	mainFlex     *tview.Flex
	header       *tview.TextView
	footer       *tview.TextView
	statusBar    *tview.TextView
	galleryTable *tview.Table
	detailModal  *tview.Modal

	// State, touched only from the event loop
	gallery view.Gallery
	modal   view.Modal
	loading *view.Loading
}

// NewApp creates a new TUI application.
func NewApp(cfg *config.Config, svc *service.GalleryService) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		cfg:    cfg,
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
	}
	a.loading = view.NewLoading(func(visible bool) {
		a.app.QueueUpdateDraw(func() {
			if visible {
				a.statusBar.SetText(" [yellow]Loading...")
			}
		})
	})

	a.setupUI()
	return a
}

// setupUI initializes all UI components.
func (a *App) setupUI() {
	a.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.header.SetBackgroundColor(tcell.ColorDarkBlue)
	a.header.SetText(headerText(a.cfg.Title, service.HomePage{}))

	a.footer = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[yellow]g[white]:Get images [yellow]Enter[white]:Details [yellow]Esc[white]:Close [yellow]q[white]:Quit")
	a.footer.SetBackgroundColor(tcell.ColorDarkBlue)

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true)
	a.statusBar.SetBackgroundColor(tcell.ColorDarkGreen)
	a.statusBar.SetText(" Press g to load the gallery")

	a.createGalleryPanel()
	a.createDetailModal()

	a.pages.AddPage("gallery", a.galleryTable, true, true)
	a.pages.AddPage("detail", a.detailModal, true, false)

	a.mainFlex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.header, 4, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.footer, 1, 0, false)

	a.app.SetInputCapture(a.handleGlobalKeys)
	a.app.SetRoot(a.mainFlex, true)
}

// handleGlobalKeys handles global keyboard shortcuts.
func (a *App) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	if a.modal.IsOpen() {
		if event.Key() == tcell.KeyEscape {
			a.modal.HandleKey(view.KeyEscape)
			a.syncModal()
			return nil
		}
		return event
	}

	if event.Key() == tcell.KeyRune {
		switch event.Rune() {
		case 'g', 'G':
			go a.fetchGallery()
			return nil
		case 'q', 'Q':
			a.Stop()
			return nil
		}
	}
	return event
}

// Run starts the TUI application.
func (a *App) Run() error {
	go a.loadHome()
	return a.app.Run()
}

// Stop stops the TUI application.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}

// loadHome fills the header with a hero description and a fact.
func (a *App) loadHome() {
	ctx, cancel := context.WithTimeout(a.ctx, a.cfg.Feed.Timeout)
	defer cancel()

	home := a.svc.Home(ctx)
	a.app.QueueUpdateDraw(func() {
		a.header.SetText(headerText(a.cfg.Title, home))
	})
}

// fetchGallery replaces the gallery with a fresh fetch. The loading status
// is released on both success and failure.
func (a *App) fetchGallery() {
	release := a.loading.Begin()
	defer release()

	ctx, cancel := context.WithTimeout(a.ctx, a.cfg.Feed.Timeout)
	defer cancel()

	g, err := a.svc.Gallery(ctx)
	a.app.QueueUpdateDraw(func() {
		if err != nil {
			a.statusBar.SetText(fmt.Sprintf(" [red]Error: %v", err))
			return
		}
		a.gallery = g
		a.updateGalleryTable()
		a.statusBar.SetText(fmt.Sprintf(" %d item(s) | Last refresh: %s", len(g.Cards), time.Now().Format("15:04:05")))
	})
}
