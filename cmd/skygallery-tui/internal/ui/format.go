package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/iconidentify/skygallery/internal/service"
	"github.com/iconidentify/skygallery/internal/view"
)

// headerText renders the title line, the hero description and the fact.
func headerText(title string, home service.HomePage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[white::b]%s[white]\n", tview.Escape(title))
	if home.HasHero {
		fmt.Fprintf(&b, "[green]%s[white]\n", tview.Escape(heroText(home.Hero)))
	} else {
		b.WriteString("\n")
	}
	if home.Fact != "" {
		fmt.Fprintf(&b, "[yellow]Did you know?[white] %s", tview.Escape(home.Fact))
	}
	return b.String()
}

// heroText describes the hero in words since the terminal cannot play it.
func heroText(h view.Hero) string {
	switch h.Kind {
	case view.HeroEmbed:
		return fmt.Sprintf("Now playing on YouTube: %s (%s)", h.Title, h.Src)
	case view.HeroVideo:
		return fmt.Sprintf("Now playing: %s (%s)", h.Title, h.Src)
	case view.HeroImage:
		return fmt.Sprintf("Featured video still: %s", h.Alt)
	default:
		return ""
	}
}

// cardRow returns the table columns for one card.
func cardRow(c view.Card) []string {
	preview := c.ThumbURL
	if preview == "" {
		preview = c.Placeholder
	}
	return []string{c.Title, c.Date, preview}
}

// detailText renders the modal body. Text fields are shown verbatim.
func detailText(d view.Detail) string {
	var b strings.Builder
	b.WriteString(d.Title)
	if d.Date != "" {
		b.WriteString("\n" + d.Date)
	}
	switch d.Media.Kind {
	case view.MediaImage:
		fmt.Fprintf(&b, "\n\nImage: %s", d.Media.Src)
	case view.MediaEmbed:
		fmt.Fprintf(&b, "\n\nEmbedded video: %s", d.Media.Src)
	}
	if d.LinkURL != "" {
		fmt.Fprintf(&b, "\n%s: %s", d.LinkLabel, d.LinkURL)
	}
	if d.Explanation != "" {
		b.WriteString("\n\n" + d.Explanation)
	}
	return b.String()
}
