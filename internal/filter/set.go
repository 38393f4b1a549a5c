package filter

import (
	"encoding/json"
	"fmt"

	appLog "github.com/Tiliavir/trivial-calendar/internal/log"
	"github.com/Tiliavir/trivial-calendar/internal/model"
	"github.com/Tiliavir/trivial-calendar/internal/storage"
)

// Set is the single owner of the filter toggles. Every change is written to
// the KV right away and then pushed to all subscribers, in subscription
// order, before the call returns. A Set is not safe for concurrent use.
type Set struct {
	kv        storage.KV
	state     model.FilterState
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(model.FilterState)
}

// Load reads the persisted toggles. A missing record yields the defaults; a
// malformed one yields the defaults and an error. The returned Set is usable
// in both cases. Fields absent from the record keep their default value.
func Load(kv storage.KV) (*Set, error) {
	s := &Set{kv: kv, state: model.DefaultFilterState()}

	data, ok, err := kv.Get(storage.KeyFilters)
	if err != nil {
		appLog.Error("filter snapshot unreadable; using defaults", err, "key", storage.KeyFilters)
		return s, err
	}
	if !ok || len(data) == 0 {
		return s, nil
	}

	state := model.DefaultFilterState()
	if err := json.Unmarshal(data, &state); err != nil {
		appLog.Error("filter snapshot corrupt; using defaults", err, "key", storage.KeyFilters)
		return s, fmt.Errorf("decode %s: %w", storage.KeyFilters, err)
	}
	s.state = state
	return s, nil
}

// State returns the current toggles.
func (s *Set) State() model.FilterState {
	return s.state
}

// Toggle flips one toggle.
func (s *Set) Toggle(f model.Flag) error {
	return s.SetFlag(f, !s.state.Enabled(f))
}

// SetFlag sets one toggle, persists the new state and notifies observers.
// Observers are notified even when persisting fails.
func (s *Set) SetFlag(f model.Flag, on bool) error {
	if _, err := model.ParseFlag(string(f)); err != nil {
		return err
	}
	s.state = s.state.With(f, on)

	err := s.save()
	s.notify()
	return err
}

func (s *Set) save() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	if err := s.kv.Set(storage.KeyFilters, data); err != nil {
		appLog.Error("filter snapshot not saved", err)
		return err
	}
	return nil
}

func (s *Set) notify() {
	// Copy so observers may unsubscribe while being notified.
	current := make([]observer, len(s.observers))
	copy(current, s.observers)
	for _, o := range current {
		o.fn(s.state)
	}
}

// Subscribe registers fn for every future change and returns a function that
// removes it again.
func (s *Set) Subscribe(fn func(model.FilterState)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
