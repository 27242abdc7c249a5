package supabase

import (
	"sync"

	"github.com/fuatnargis/telyna-ai/types"
)

// Auth state change events.
const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

// AuthNotifier is the in-process subscribe-to-auth-changes registry.
// Subscribers are called synchronously on every sign-in/sign-out that goes
// through this service.
type AuthNotifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(event string, user *types.AuthUser)
}

func NewAuthNotifier() *AuthNotifier {
	return &AuthNotifier{
		subs: make(map[int]func(event string, user *types.AuthUser)),
	}
}

// Subscribe registers a callback and returns its unsubscribe function.
func (n *AuthNotifier) Subscribe(cb func(event string, user *types.AuthUser)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = cb

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *AuthNotifier) Notify(event string, user *types.AuthUser) {
	n.mu.Lock()
	callbacks := make([]func(string, *types.AuthUser), 0, len(n.subs))
	for _, cb := range n.subs {
		callbacks = append(callbacks, cb)
	}
	n.mu.Unlock()

	for _, cb := range callbacks {
		cb(event, user)
	}
}
