package session

import "github.com/MKhiriev/go-expense-keeper/models"

// State is a read-only snapshot of the session.
type State struct {
	// User is the signed-in user, or nil when anonymous.
	User *models.User
	// IsLoading is true while a session operation waits on the network.
	IsLoading bool
	// IsInitialized becomes true after the first Initialize completes and
	// never resets.
	IsInitialized bool
}

// IsAuthenticated reports whether a user is signed in.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
