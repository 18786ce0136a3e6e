package domain

import "fmt"

type Session struct {
	User            *User
	IsAuthenticated bool
}

func EmptySession() Session {
	return Session{}
}

func (s Session) Validate() error {
	if s.IsAuthenticated && s.User == nil {
		return fmt.Errorf("%w: authenticated session without user", ErrInvalidState)
	}

	return nil
}

// Clone returns a copy that does not share the user record.
func (s Session) Clone() Session {
	if s.User == nil {
		return s
	}
	user := *s.User
	s.User = &user
	return s
}

type CredentialPair struct {
	Access  string
	Refresh string
}

func (p CredentialPair) IsZero() bool {
	return p.Access == "" && p.Refresh == ""
}

// TokenGrant is what the token-issue endpoint returns on a successful login.
type TokenGrant struct {
	Credentials CredentialPair
	User        User
}
