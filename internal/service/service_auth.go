// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/blog-auth/internal/crypto"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/internal/token"
	"github.com/MKhiriev/blog-auth/models"
)

// Compared against when the username is unknown so a miss costs one HMAC,
// like a hit.
var (
	dummySalt = base64.StdEncoding.EncodeToString(make([]byte, crypto.SaltSize))
	dummyHash = base64.StdEncoding.EncodeToString(make([]byte, 32))
)

// authService is the concrete implementation of AuthService.
// It owns the password hasher, the token issuer and both validators; all of
// them are read-only after construction, so the service is safe for
// concurrent use.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	issuer *token.Issuer
	// guard checks tokens on protected routes; refresh accepts tokens a
	// little further past expiry.
	guard   *token.Validator
	refresh *token.Validator

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. opts are passed to the issuer
// and both validators, which lets tests pin the clock.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	key *token.Key,
	logger *logger.Logger,
	opts ...token.Option,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         token.NewIssuer(key, opts...),
		guard:          token.NewGuardValidator(key, opts...),
		refresh:        token.NewRefreshValidator(key, opts...),
		logger:         logger,
	}
}

// RegisterUser creates a new Reader account.
//
// Returns the persisted user (with a database-assigned UserID) or:
//   - ErrInvalidDataProvided wrapping the validation errors.
//   - store.ErrLoginAlreadyExists (wrapped) if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Str("userName", req.UserName).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.newUser(req.UserName, req.Password, models.RoleReader)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		return models.User{}, err
	}
	user.Email = req.Email

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("userName", req.UserName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return withoutCredentials(registeredUser), nil
}

// Login authenticates an existing user and issues a token.
//
// Unknown usernames, inactive identities and wrong passwords all return
// ErrUnauthorized, so callers cannot tell which one happened.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Msg("invalid login data")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(req.Password, dummyHash, dummySalt)
			log.Debug().Str("userName", req.UserName).Msg("no user was found")
			return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		log.Err(err).Str("userName", req.UserName).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash, foundUser.PasswordSalt) {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrWrongPassword)
	}

	if !foundUser.IsActive {
		log.Debug().Int64("id", foundUser.UserID).Msg("inactive user tried to log in")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrInactiveUser)
	}

	if err = a.userRepository.UpdateLastLogin(ctx, foundUser.UserID); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("updating last login failed")
		return models.User{}, models.Token{}, fmt.Errorf("updating last login failed: %w", err)
	}

	tok, err := a.issuer.Issue(foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	return withoutCredentials(foundUser), tok, nil
}

// ParseToken validates a raw token with the guard leeway and returns the
// principal it names. Any failure is ErrUnauthorized wrapping the token
// error.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	claims, err := a.guard.Validate(tokenString)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	principal, err := claims.Principal()
	if err != nil {
		return models.Anonymous(), fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return principal, nil
}

// RefreshToken exchanges a still valid (or barely expired) token for a new
// one. The new token is built from the stored identity, so role changes
// and renames take effect. Every failure is ErrUnauthorized.
func (a *authService) RefreshToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	claims, err := a.refresh.Validate(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	// Validate already checked the id; read it again for the value.
	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Debug().Err(err).Int64("id", userID).Msg("refresh for unknown user")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if !user.IsActive {
		log.Debug().Int64("id", userID).Msg("refresh for inactive user")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrInactiveUser)
	}

	tok, err := a.issuer.Issue(user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("creation of token failed")
		return models.Token{}, fmt.Errorf("%w: %w: %w", ErrUnauthorized, ErrTokenCreationFailed, err)
	}

	return tok, nil
}

// EnsureAdmin creates the bootstrap Admin when userName is free. An
// existing identity with that username is left untouched, whatever its
// role.
func (a *authService) EnsureAdmin(ctx context.Context, userName, password string) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, userName)
	switch {
	case err == nil:
		log.Info().Str("userName", userName).Msg("bootstrap admin already exists")
		return nil
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	admin, err := a.newUser(userName, password, models.RoleAdmin)
	if err != nil {
		return err
	}

	created, err := a.userRepository.CreateUser(ctx, admin)
	if err != nil {
		// another instance got there first
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("userName", userName).Msg("bootstrap admin created")
	return nil
}

// newUser builds an active identity with a freshly salted password hash.
func (a *authService) newUser(userName, password string, role models.Role) (models.User, error) {
	hash, salt, err := a.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return models.User{
		UserName:     userName,
		NickName:     userName,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         role,
		IsActive:     true,
	}, nil
}

func withoutCredentials(u models.User) models.User {
	u.PasswordHash = ""
	u.PasswordSalt = ""
	return u
}
