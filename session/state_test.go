package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_Defaults(t *testing.T) {
	state := NewState()

	assert.Equal(t, User{LoggedIn: false, Email: ""}, state.User.Get())
	assert.Equal(t, AppStatus{LoginInitialized: false}, state.Status.Get())
}

func TestStates_AreIsolated(t *testing.T) {
	a, b := NewState(), NewState()

	a.User.Set(User{LoggedIn: true, Email: "tex@example.com"})

	assert.True(t, a.User.Get().LoggedIn)
	assert.False(t, b.User.Get().LoggedIn)
}

func TestSubscribe_ReceivesCurrentAndUpdates(t *testing.T) {
	store := NewStore(AppStatus{})

	var seen []bool
	unsubscribe := store.Subscribe(func(s AppStatus) {
		seen = append(seen, s.LoginInitialized)
	})

	store.Update(func(s AppStatus) AppStatus {
		s.LoginInitialized = true
		return s
	})
	unsubscribe()
	store.Set(AppStatus{})

	assert.Equal(t, []bool{false, true}, seen)
	assert.False(t, store.Get().LoginInitialized)
}

func TestSubscribe_NotifiesInOrder(t *testing.T) {
	store := NewStore(0)

	var order []string
	store.Subscribe(func(int) { order = append(order, "first") })
	store.Subscribe(func(int) { order = append(order, "second") })
	order = nil

	store.Set(1)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscriber_CanReadStore(t *testing.T) {
	store := NewStore(User{})

	var got User
	store.Subscribe(func(User) { got = store.Get() })
	store.Set(User{LoggedIn: true, Email: "kit@example.com"})

	assert.Equal(t, "kit@example.com", got.Email)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := NewStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	require.Equal(t, 50, store.Get())
}
