package auth

import (
	"context"

	"github.com/burdstermcfc/site-app/internal/model"
)

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
}

// Authenticator checks an email and password pair.
type Authenticator interface {
	VerifyCredentials(ctx context.Context, email, password string) (*model.User, error)
}

// Observer records authentication outcomes.
type Observer interface {
	ObserveAuth(event, result string)
}

type nopObserver struct{}

func (nopObserver) ObserveAuth(string, string) {}

func observer(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
