package session

import "sync"

type User struct {
	LoggedIn bool   `json:"loggedIn"`
	Email    string `json:"email"`
}

type AppStatus struct {
	LoginInitialized bool `json:"loginInitialized"`
}

// State is the per-page application state. It is never persisted.
type State struct {
	User   *Store[User]
	Status *Store[AppStatus]
}

func NewState() *State {
	return &State{
		User:   NewStore(User{}),
		Status: NewStore(AppStatus{}),
	}
}

// Store holds a value and notifies subscribers whenever it changes.
// Subscribers run synchronously, outside the lock.
type Store[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{value: initial, subs: make(map[int]func(T))}
}

func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Store[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	value := s.value
	subs := make([]func(T), 0, len(s.subs))
	for _, id := range s.order() {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(value)
	}
}

// Subscribe calls fn with the current value right away and again after every
// update, until the returned function is called.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	value := s.value
	s.mu.Unlock()

	fn(value)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// order returns subscriber ids in subscription order. Caller holds mu.
func (s *Store[T]) order() []int {
	ids := make([]int, 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if _, ok := s.subs[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
