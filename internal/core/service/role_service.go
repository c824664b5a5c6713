package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// RoleService implements role management. Name uniqueness is pre-checked
// here for a friendly error; the roles.name UNIQUE constraint is the
// actual guard under concurrency.
type RoleService struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, log: log}
}

func validateRoleName(name string) error {
	if name == "" {
		return domain.Invalid("role name cannot be empty")
	}
	if len(name) > domain.MaxRoleNameLen {
		return domain.Invalidf("role name cannot exceed %d characters", domain.MaxRoleNameLen)
	}
	return nil
}

func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	if err := validateRoleName(name); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn().Str("name", name).Msg("role name already in use")
		return nil, domain.ErrRoleNameTaken
	}

	id, err := s.repo.Create(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to create role")
		return nil, err
	}

	s.log.Info().Int64("role_id", id).Str("name", name).Msg("role created")
	return &domain.Role{ID: id, Name: name}, nil
}

func (s *RoleService) GetAll(ctx context.Context) ([]domain.Role, error) {
	return s.repo.GetAll(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	if id <= 0 {
		return nil, domain.Invalid("role id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *RoleService) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	if name == "" {
		return nil, domain.Invalid("role name cannot be empty")
	}
	return s.repo.GetByName(ctx, name)
}

// Update renames a role. The uniqueness check excludes the role itself so
// keeping the current name is never flagged as a conflict.
func (s *RoleService) Update(ctx context.Context, id int64, name string) (*domain.Role, error) {
	if id <= 0 {
		return nil, domain.Invalid("role id must be positive")
	}
	if err := validateRoleName(name); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn().Int64("role_id", id).Str("name", name).Msg("role name already in use")
		return nil, domain.ErrRoleNameTaken
	}

	role := &domain.Role{ID: id, Name: name}
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}

	s.log.Info().Int64("role_id", id).Str("name", name).Msg("role updated")
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Invalid("role id must be positive")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("role_id", id).Msg("role deleted")
	return nil
}
