package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// dummyPassword is hashed once per service and compared against when a login
// names an unknown user, so both failure paths spend a bcrypt comparison.
const dummyPassword = "go-task-keeper-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the credential store used to create and look up users.
	userRepository store.UserRepository

	// validator checks credentials before any store access.
	validator validators.Validator

	// passwordHashCost is the bcrypt cost of newly stored hashes.
	passwordHashCost int

	// dummyHash is compared against for unknown usernames.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewTaskValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		dummyHash:        dummyHash,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		uuidGenerator:    utils.NewUUIDGenerator(),
		logger:           logger,
	}, nil
}

// RegisterUser creates a new account.
//
// Returns:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - a wrapped store.ErrUserAlreadyExists if the username is taken.
//   - a wrapped store.ErrPersistence if the snapshot could not be written.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid user data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return err
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
		Tasks:        []models.Task{},
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", credentials.Username).Msg("user registered")
	return nil
}

// Login authenticates an existing user and issues a session token.
//
// Returns ErrInvalidDataProvided for empty credentials and
// ErrInvalidCredentials for an unknown username or a wrong password.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid user data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		utils.CheckPassword(a.dummyHash, credentials.Password)
		log.Warn().Str("username", credentials.Username).Msg("login attempt for unknown user")
		return models.Token{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, credentials.Password) {
		log.Warn().Str("username", credentials.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(foundUser.Username)
}

// ParseToken validates and parses a raw JWT string.
//
// Returns ErrMissingToken for an empty string, ErrTokenIsExpired for a
// correctly signed token past its expiry and ErrTokenIsInvalid for any other
// verification failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

func (a *authService) createToken(username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.uuidGenerator.Generate(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
