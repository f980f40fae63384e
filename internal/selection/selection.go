package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"costar/internal/overlap"
)

const (
	// DefaultMinQueryLength is the shortest query sent to the searcher.
	DefaultMinQueryLength = 2
	// DefaultMaxResults caps the suggestions kept per slot.
	DefaultMaxResults = 8
)

// ErrMinimumSlots is returned when removing a slot would leave fewer than two.
var ErrMinimumSlots = errors.New("at least 2 movie slots are required")

// Searcher looks up movies by title.
type Searcher interface {
	Search(ctx context.Context, query string) ([]overlap.Movie, error)
}

// Slot is one movie picker.
type Slot struct {
	Input        string
	Results      []overlap.Movie
	Selected     *overlap.Movie
	DropdownOpen bool
}

// Listener is notified with a snapshot after every change.
type Listener func([]Slot)

// Option configures a Model.
type Option func(*Model)

// WithLimits overrides the minimum query length and result cap.
func WithLimits(minQueryLength, maxResults int) Option {
	return func(m *Model) {
		if minQueryLength > 0 {
			m.minQueryLength = minQueryLength
		}
		if maxResults > 0 {
			m.maxResults = maxResults
		}
	}
}

// Model is the ordered slot list. It is safe for concurrent use.
type Model struct {
	searcher       Searcher
	minQueryLength int
	maxResults     int

	mu        sync.Mutex
	slots     []Slot
	listeners map[int]Listener
	nextID    int
}

// New returns a model with two empty slots.
func New(searcher Searcher, opts ...Option) *Model {
	m := &Model{
		searcher:       searcher,
		minQueryLength: DefaultMinQueryLength,
		maxResults:     DefaultMaxResults,
		slots:          make([]Slot, overlap.MinMovies),
		listeners:      make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Slots returns a copy of the current slots.
func (m *Model) Slots() []Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Len returns the number of slots.
func (m *Model) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}

// Add appends an empty slot and returns its index.
func (m *Model) Add() int {
	m.mu.Lock()
	m.slots = append(m.slots, Slot{})
	index := len(m.slots) - 1
	m.mu.Unlock()
	m.notify()
	return index
}

// Remove deletes the slot at index. The last two slots cannot be removed.
func (m *Model) Remove(index int) error {
	m.mu.Lock()
	if err := m.checkIndexLocked(index); err != nil {
		m.mu.Unlock()
		return err
	}
	if len(m.slots) <= overlap.MinMovies {
		m.mu.Unlock()
		return ErrMinimumSlots
	}
	m.slots = append(m.slots[:index], m.slots[index+1:]...)
	m.mu.Unlock()
	m.notify()
	return nil
}

// SetInput records typed text for a slot and refreshes its suggestions.
// Queries shorter than the minimum clear the results without searching.
// On search failure the previous results are kept and the error returned.
func (m *Model) SetInput(ctx context.Context, index int, text string) error {
	m.mu.Lock()
	if err := m.checkIndexLocked(index); err != nil {
		m.mu.Unlock()
		return err
	}
	m.slots[index].Input = text
	m.slots[index].DropdownOpen = true
	short := utf8.RuneCountInString(text) < m.minQueryLength || strings.TrimSpace(text) == ""
	if short {
		m.slots[index].Results = nil
	}
	m.mu.Unlock()

	if short || m.searcher == nil {
		m.notify()
		return nil
	}

	results, err := m.searcher.Search(ctx, text)
	if err != nil {
		m.notify()
		return fmt.Errorf("search %q: %w", text, err)
	}
	if len(results) > m.maxResults {
		results = results[:m.maxResults]
	}

	m.mu.Lock()
	// The slot may have been removed or retyped while searching.
	if index < len(m.slots) && m.slots[index].Input == text {
		m.slots[index].Results = append([]overlap.Movie(nil), results...)
		m.slots[index].DropdownOpen = len(results) > 0
	}
	m.mu.Unlock()
	m.notify()
	return nil
}

// Select chooses a movie for a slot, copies its title into the input and
// closes the dropdown.
func (m *Model) Select(index int, movie overlap.Movie) error {
	m.mu.Lock()
	if err := m.checkIndexLocked(index); err != nil {
		m.mu.Unlock()
		return err
	}
	chosen := movie
	m.slots[index].Selected = &chosen
	m.slots[index].Input = movie.Title
	m.slots[index].DropdownOpen = false
	m.mu.Unlock()
	m.notify()
	return nil
}

// SelectResult chooses the n-th suggestion of a slot.
func (m *Model) SelectResult(index, result int) error {
	m.mu.Lock()
	if err := m.checkIndexLocked(index); err != nil {
		m.mu.Unlock()
		return err
	}
	results := m.slots[index].Results
	if result < 0 || result >= len(results) {
		m.mu.Unlock()
		return fmt.Errorf("slot %d has no result %d", index, result)
	}
	movie := results[result]
	m.mu.Unlock()
	return m.Select(index, movie)
}

// Dismiss closes every open dropdown except the one at keep. Pass -1 to
// close them all, as an outside click would.
func (m *Model) Dismiss(keep int) {
	m.mu.Lock()
	changed := false
	for i := range m.slots {
		if i != keep && m.slots[i].DropdownOpen {
			m.slots[i].DropdownOpen = false
			changed = true
		}
	}
	m.mu.Unlock()
	if changed {
		m.notify()
	}
}

// Selected returns the chosen movies in slot order, skipping empty slots.
func (m *Model) Selected() []overlap.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	movies := make([]overlap.Movie, 0, len(m.slots))
	for _, slot := range m.slots {
		if slot.Selected != nil {
			movies = append(movies, *slot.Selected)
		}
	}
	return movies
}

// Overlap runs the aggregator over the selected movies.
func (m *Model) Overlap(ctx context.Context, aggregator *overlap.Aggregator) ([]overlap.Result, error) {
	return aggregator.Compute(ctx, m.Selected())
}

// Subscribe registers a change listener and returns a function that
// removes it.
func (m *Model) Subscribe(listener Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = listener
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

func (m *Model) notify() {
	m.mu.Lock()
	if len(m.listeners) == 0 {
		m.mu.Unlock()
		return
	}
	snapshot := m.snapshotLocked()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, listener := range m.listeners {
		listeners = append(listeners, listener)
	}
	m.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

func (m *Model) snapshotLocked() []Slot {
	out := make([]Slot, len(m.slots))
	for i, slot := range m.slots {
		out[i] = slot
		out[i].Results = append([]overlap.Movie(nil), slot.Results...)
		if slot.Selected != nil {
			chosen := *slot.Selected
			out[i].Selected = &chosen
		}
	}
	return out
}

func (m *Model) checkIndexLocked(index int) error {
	if index < 0 || index >= len(m.slots) {
		return fmt.Errorf("slot %d out of range (have %d)", index, len(m.slots))
	}
	return nil
}
