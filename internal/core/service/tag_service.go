package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// TagService mirrors RoleService for event tags: same uniqueness flow with
// the tag-specific name limit.
type TagService struct {
	repo ports.TagRepository
	log  zerolog.Logger
}

func NewTagService(repo ports.TagRepository, log zerolog.Logger) *TagService {
	return &TagService{repo: repo, log: log}
}

func validateTagName(name string) error {
	if name == "" {
		return domain.Invalid("tag name cannot be empty")
	}
	if len(name) > domain.MaxTagNameLen {
		return domain.Invalidf("tag name cannot exceed %d characters", domain.MaxTagNameLen)
	}
	return nil
}

func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn().Str("name", name).Msg("tag name already in use")
		return nil, domain.ErrTagNameTaken
	}

	id, err := s.repo.Create(ctx, name)
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to create tag")
		return nil, err
	}

	s.log.Info().Int64("tag_id", id).Str("name", name).Msg("tag created")
	return &domain.Tag{ID: id, Name: name}, nil
}

func (s *TagService) GetAll(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.GetAll(ctx)
}

func (s *TagService) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	if id <= 0 {
		return nil, domain.Invalid("tag id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TagService) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	if name == "" {
		return nil, domain.Invalid("tag name cannot be empty")
	}
	return s.repo.GetByName(ctx, name)
}

func (s *TagService) Update(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	if id <= 0 {
		return nil, domain.Invalid("tag id must be positive")
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn().Int64("tag_id", id).Str("name", name).Msg("tag name already in use")
		return nil, domain.ErrTagNameTaken
	}

	tag := &domain.Tag{ID: id, Name: name}
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}

	s.log.Info().Int64("tag_id", id).Str("name", name).Msg("tag updated")
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Invalid("tag id must be positive")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("tag_id", id).Msg("tag deleted")
	return nil
}
