package model

import "github.com/fhuszti/videos-ms-go/internal/db"

// Requester is the authenticated identity behind a request, resolved by the
// auth middleware before any core call. A zero ID means anonymous.
type Requester struct {
	ID   db.UUID
	Role Role
}

// IsAnonymous reports whether the request carried no authenticated identity.
func (r Requester) IsAnonymous() bool {
	return r.ID.IsNil()
}
