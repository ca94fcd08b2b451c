// Package view maps feed items to the view models the front ends render.
//
// Everything here is pure data-to-view mapping: no I/O, no templates. The
// HTTP handlers and the terminal browser both render these structures, so
// the card, detail and hero rules are expressed once and tested without a
// live rendering environment.
package view
