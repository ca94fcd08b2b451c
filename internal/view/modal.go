package view

// ModalState is the visibility of the detail modal.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// KeyEscape is the key name that closes the modal.
const KeyEscape = "Escape"

// Modal tracks the detail modal. It starts closed. Closing keeps the last
// content until the next Open replaces it.
//
// Modal is not safe for concurrent use; drive it from the UI event loop.
type Modal struct {
	state   ModalState
	content Detail
}

// Open shows d, replacing any previous content.
func (m *Modal) Open(d Detail) {
	m.content = d
	m.state = ModalOpen
}

// Close hides the modal.
func (m *Modal) Close() {
	m.state = ModalClosed
}

// HandleKey closes the modal on Escape. It reports whether the key changed state.
func (m *Modal) HandleKey(key string) bool {
	if key != KeyEscape || m.state != ModalOpen {
		return false
	}
	m.Close()
	return true
}

// HandleBackdrop handles a click on the modal container. Only clicks that
// land on the backdrop itself, not on the content box, close the modal.
func (m *Modal) HandleBackdrop(onBackdrop bool) bool {
	if !onBackdrop || m.state != ModalOpen {
		return false
	}
	m.Close()
	return true
}

// State returns the current visibility.
func (m *Modal) State() ModalState {
	return m.state
}

// IsOpen reports whether the modal is visible.
func (m *Modal) IsOpen() bool {
	return m.state == ModalOpen
}

// Content returns the most recently opened detail.
func (m *Modal) Content() Detail {
	return m.content
}
