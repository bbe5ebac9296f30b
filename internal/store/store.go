// Package store holds the single authoritative project list and fans out
// snapshots to subscribed views after every effective mutation.
//
// The store is built for the single event loop the TUI runs on: mutations and
// notifications all happen synchronously on the caller's goroutine, so by the
// time Create or Move returns, every subscriber has already re-rendered
// against the new state. No locking for v1; nothing else touches the slice.
package store

import (
	"github.com/idilsaglam/board/internal/model"
)

// Subscription identifies one registered observer so it can be removed later.
type Subscription int

type subscriber struct {
	id Subscription
	fn func(snapshot []model.Project)
}

// Store owns the ordered project sequence. Construct one per process with New
// and hand the pointer to whoever needs it; there is no package-level instance.
type Store struct {
	projects []model.Project
	subs     []subscriber
	nextSub  Subscription
}

func New() *Store {
	return &Store{}
}

// Create appends a new project with StatusActive and notifies subscribers.
// Input validation happens before this call (see internal/form); Create
// itself always succeeds and returns the new project's id.
func (s *Store) Create(title, description string, people int) string {
	p := model.Project{
		ID:          model.NewID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      model.StatusActive,
	}
	s.projects = append(s.projects, p)
	s.notify()
	return p.ID
}

// Move recategorizes the project with the given id.
//
// An unknown id is absorbed silently: a drop can carry a stale payload and
// that must not crash or alert. Moving a project onto the status it already
// has is also a no-op, and fires no notification.
func (s *Store) Move(id string, to model.Status) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status == to {
			return
		}
		s.projects[i].Status = to
		s.notify()
		return
	}
}

// Subscribe registers fn to receive a full snapshot after every effective
// mutation. Callbacks run synchronously in registration order.
func (s *Store) Subscribe(fn func(snapshot []model.Project)) Subscription {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return id
}

// Unsubscribe removes a previously registered observer. Unknown handles are
// ignored.
func (s *Store) Unsubscribe(h Subscription) {
	for i := range s.subs {
		if s.subs[i].id == h {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Snapshot returns an independent copy of the project sequence in insertion
// order. Callers may mutate the returned slice freely.
func (s *Store) Snapshot() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Len reports the number of projects on the board.
func (s *Store) Len() int {
	return len(s.projects)
}

// notify runs after the mutation is fully applied. Each subscriber gets its
// own copy so one observer mutating its snapshot cannot leak into another.
func (s *Store) notify() {
	for _, sub := range s.subs {
		sub.fn(s.Snapshot())
	}
}
