package chain

import (
	"github.com/google/uuid"

	"github.com/dshills/gopatterns/internal/auth/userstore"
)

// Request is the value threaded through the chain. It starts with the
// credentials under test and is enriched in place as it flows: the existence
// stage attaches User for the stages behind it.
type Request struct {
	// ID identifies the request in logs.
	ID uuid.UUID

	// Username and Password are the credentials under test.
	Username string
	Password string

	// User is the stored record for Username, attached by the existence
	// stage. Nil until that stage has passed.
	User *userstore.User
}

// NewRequest creates a login request with a fresh ID.
func NewRequest(username, password string) *Request {
	return &Request{
		ID:       uuid.New(),
		Username: username,
		Password: password,
	}
}
