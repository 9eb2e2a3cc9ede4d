package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/model"
	"github.com/burdstermcfc/site-app/internal/store"
	"github.com/burdstermcfc/site-app/internal/worker"
)

var (
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
)

// CredentialStore registers users and checks their passwords. bcrypt runs
// on pool so concurrent logins cannot occupy more than its workers.
type CredentialStore struct {
	db        database.DB
	pool      worker.Pool
	cost      int
	dummyHash string
}

// NewCredentialStore precomputes a hash used to compare against when a
// login names an unknown email, so both failure paths do the same work.
func NewCredentialStore(db database.DB, pool worker.Pool, cost int) (*CredentialStore, error) {
	dummy, err := HashPassword("site-app-dummy-password", cost)
	if err != nil {
		return nil, fmt.Errorf("NewCredentialStore: %w", err)
	}
	return &CredentialStore{db: db, pool: pool, cost: cost, dummyHash: dummy}, nil
}

// Register creates a user. Blank fields give ErrMissingFields and an email
// that is already registered gives ErrEmailInUse.
func (s *CredentialStore) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingFields
	}

	var (
		hash    string
		hashErr error
	)
	if err := s.pool.Do(ctx, func() { hash, hashErr = HashPassword(password, s.cost) }); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	if hashErr != nil {
		return nil, fmt.Errorf("Register: %w", hashErr)
	}

	u, err := createUser(ctx, s.db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("Register: %w", ErrEmailInUse)
		}
		return nil, fmt.Errorf("Register: %w", err)
	}
	return u, nil
}

// VerifyCredentials returns the user whose email and password match. An
// unknown email and a wrong password both give ErrInvalidCredentials.
func (s *CredentialStore) VerifyCredentials(ctx context.Context, email, password string) (*model.User, error) {
	u, err := getUserByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.compare(ctx, s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("VerifyCredentials: %w", err)
	}

	if err := s.compare(ctx, u.PasswordHash, password); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("VerifyCredentials: %w", ctxErr)
		}
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *CredentialStore) compare(ctx context.Context, hash, password string) error {
	var cmpErr error
	if err := s.pool.Do(ctx, func() { cmpErr = ComparePassword(hash, password) }); err != nil {
		return err
	}
	return cmpErr
}
