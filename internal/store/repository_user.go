package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// userRepository is the credential store. It holds every user record in
// memory and mirrors the whole map to a [SnapshotStorage] after each
// mutation.
//
// A single mutex covers read-modify-write-persist: a mutation builds the
// next snapshot from a copy, saves it, and only then swaps it in. A failed
// save therefore leaves the in-memory state untouched.
type userRepository struct {
	mu       sync.RWMutex
	users    models.Snapshot
	storage  SnapshotStorage
	logger   *logger.Logger
	isLoaded bool
}

// NewUserRepository constructs a [UserRepository] persisting to storage.
// [UserRepository.Load] must be called before the repository is used.
func NewUserRepository(storage SnapshotStorage, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *userRepository) Load(ctx context.Context) error {
	snapshot, err := r.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = snapshot
	r.isLoaded = true
	r.logger.Info().Int("users", len(snapshot)).Msg("credential store loaded")

	return nil
}

// CreateUser stores a new user with an empty task list.
//
// Error handling:
//   - username taken → [ErrUserAlreadyExists].
//   - snapshot save failure → [ErrPersistence]; the user is not added.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isLoaded {
		return models.User{}, ErrStoreNotLoaded
	}
	if _, exists := r.users[user.Username]; exists {
		return models.User{}, ErrUserAlreadyExists
	}

	user = user.Clone()
	if user.NextTaskID < 1 {
		user.NextTaskID = 1
	}

	next := r.users.Clone()
	next[user.Username] = user
	if err := r.commit(ctx, next); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving snapshot")
		return models.User{}, err
	}

	return user.Clone(), nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.isLoaded {
		return models.User{}, ErrStoreNotLoaded
	}

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user.Clone(), nil
}

// UpdateUser applies fn to a copy of the user and persists the result.
//
// Error handling:
//   - unknown username → [ErrNoUserWasFound].
//   - fn error → returned as is; nothing is saved.
//   - snapshot save failure → [ErrPersistence]; the change is discarded.
func (r *userRepository) UpdateUser(ctx context.Context, username string, fn func(user *models.User) error) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isLoaded {
		return ErrStoreNotLoaded
	}

	current, ok := r.users[username]
	if !ok {
		return ErrNoUserWasFound
	}

	updated := current.Clone()
	if err := fn(&updated); err != nil {
		return err
	}
	updated.Username = username

	next := r.users.Clone()
	next[username] = updated
	if err := r.commit(ctx, next); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error saving snapshot")
		return err
	}

	return nil
}

// commit saves next and installs it as the current state. Callers must hold
// the write lock.
func (r *userRepository) commit(ctx context.Context, next models.Snapshot) error {
	if err := r.storage.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	r.users = next
	return nil
}
