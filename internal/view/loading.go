package view

import "sync"

// Loading tracks the loading indicator shown while the gallery is fetched.
// Each Begin must be paired with a call to the release func it returns;
// callers defer it so the indicator hides on every outcome.
type Loading struct {
	mu       sync.Mutex
	active   int
	onChange func(visible bool)
}

// NewLoading returns an indicator that calls onChange whenever visibility
// flips. onChange may be nil.
func NewLoading(onChange func(visible bool)) *Loading {
	return &Loading{onChange: onChange}
}

// Begin shows the indicator and returns its release func. Calling release
// more than once has no further effect.
func (l *Loading) Begin() (release func()) {
	l.mu.Lock()
	l.active++
	show := l.active == 1
	l.mu.Unlock()
	if show {
		l.notify(true)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.active--
			hide := l.active == 0
			l.mu.Unlock()
			if hide {
				l.notify(false)
			}
		})
	}
}

// Visible reports whether any fetch is in flight.
func (l *Loading) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active > 0
}

func (l *Loading) notify(visible bool) {
	if l.onChange != nil {
		l.onChange(visible)
	}
}
