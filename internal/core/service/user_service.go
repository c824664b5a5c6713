package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService implements account management. Passwords only ever pass
// through here as plaintext on the way to the Credentials hasher; the
// stored hash is never returned to callers in any serialized form.
type UserService struct {
	repo   ports.UserRepository
	creds  ports.Credentials
	exists Existence
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, creds ports.Credentials, exists Existence, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, creds: creds, exists: exists, log: log}
}

func validateUserFields(username, name, email string) error {
	if username == "" {
		return domain.Invalid("username cannot be empty")
	}
	if len(username) > domain.MaxUsernameLen {
		return domain.Invalidf("username cannot exceed %d characters", domain.MaxUsernameLen)
	}
	if name == "" {
		return domain.Invalid("name cannot be empty")
	}
	if len(name) > domain.MaxUserNameLen {
		return domain.Invalidf("name cannot exceed %d characters", domain.MaxUserNameLen)
	}
	if email == "" {
		return domain.Invalid("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return domain.Invalid("email is not a valid address")
	}
	return nil
}

// usernameFree reports a conflict error when another user (excluding
// selfID, 0 = none) already holds username.
func (s *UserService) usernameFree(ctx context.Context, username string, selfID int64) error {
	existing, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return domain.ErrUsernameTaken
		}
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (s *UserService) emailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return domain.ErrEmailTaken
		}
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if err := validateUserFields(input.Username, input.Name, input.Email); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, domain.Invalid("password cannot be empty")
	}

	roleID := input.RoleID
	if roleID == 0 {
		roleID = domain.RoleStandardUser
	}
	ok, err := s.exists.RoleExists(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrRoleNotFound
	}

	if err := s.usernameFree(ctx, input.Username, 0); err != nil {
		return nil, err
	}
	if err := s.emailFree(ctx, input.Email, 0); err != nil {
		return nil, err
	}

	hash, err := s.creds.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		RoleID:       roleID,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}
	user.ID = id

	s.log.Info().Int64("user_id", id).Str("username", input.Username).Msg("user registered")
	return user, nil
}

// Login verifies credentials. A missing account, a wrong password, and a
// corrupted stored hash all yield the same ErrInvalidCredentials so the
// response cannot be used to enumerate usernames.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Str("username", username).Msg("login for unknown username")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.creds.Verify(password, user.PasswordHash) {
		s.log.Warn().Str("username", username).Msg("login with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context, page, size int) ([]domain.User, error) {
	if page < 1 || size < 1 {
		return nil, domain.Invalid("page number and page size must be at least 1")
	}
	return s.repo.List(ctx, page, size)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.Invalid("user id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.Invalid("username cannot be empty")
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.Invalid("email cannot be empty")
	}
	return s.repo.GetByEmail(ctx, email)
}

// Update replaces a user's mutable fields. The password is re-hashed only
// when a new plaintext is supplied that does not verify against the stored
// hash, so a no-op update never double-hashes.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.ID <= 0 {
		return nil, domain.Invalid("user id must be positive")
	}
	if err := validateUserFields(input.Username, input.Name, input.Email); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.usernameFree(ctx, input.Username, input.ID); err != nil {
		return nil, err
	}
	if err := s.emailFree(ctx, input.Email, input.ID); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        input.ID,
		Username:  input.Username,
		Name:      input.Name,
		Email:     input.Email,
		RoleID:    existing.RoleID,
		CreatedAt: existing.CreatedAt,
	}

	if input.RoleID != 0 && input.RoleID != existing.RoleID {
		ok, err := s.exists.RoleExists(ctx, input.RoleID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrRoleNotFound
		}
		user.RoleID = input.RoleID
	}

	user.PasswordHash = existing.PasswordHash
	if input.Password != "" && !s.creds.Verify(input.Password, existing.PasswordHash) {
		hash, err := s.creds.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) ChangeRole(ctx context.Context, userID, roleID int64) error {
	if userID <= 0 {
		return domain.Invalid("user id must be positive")
	}
	if roleID <= 0 {
		return domain.Invalid("role id must be positive")
	}

	ok, err := s.exists.RoleExists(ctx, roleID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrRoleNotFound
	}

	if err := s.repo.UpdateRole(ctx, userID, roleID); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", userID).Int64("role_id", roleID).Msg("user role changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Invalid("user id must be positive")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
