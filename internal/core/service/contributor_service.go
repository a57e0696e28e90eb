package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minhvo/catalog-service/internal/core/domain"
	"github.com/minhvo/catalog-service/internal/port"
)

// ContributorDTO is the serialization-facing copy of a contributor.
type ContributorDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateContributorCommand carries the payload of a create request.
type CreateContributorCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateContributorCommand carries the payload of an update request.
type UpdateContributorCommand struct {
	ID    int64  `json:"-"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ContributorService struct {
	repo port.ContributorRepository
	log  *logrus.Entry
}

func NewContributorService(repo port.ContributorRepository, log *logrus.Logger) *ContributorService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ContributorService{
		repo: repo,
		log:  log.WithField("service", "contributors"),
	}
}

func (s *ContributorService) Get(ctx context.Context, id int64) (ContributorDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ContributorDTO{}, err
	}
	return toContributorDTO(c), nil
}

func (s *ContributorService) List(ctx context.Context) ([]ContributorDTO, error) {
	contributors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]ContributorDTO, 0, len(contributors))
	for _, c := range contributors {
		dtos = append(dtos, toContributorDTO(c))
	}
	return dtos, nil
}

func (s *ContributorService) Create(ctx context.Context, cmd CreateContributorCommand) (ContributorDTO, error) {
	if err := validateContributor(cmd.Name, cmd.Email); err != nil {
		return ContributorDTO{}, err
	}

	c, err := s.repo.Create(ctx, domain.Contributor{
		Name:  strings.TrimSpace(cmd.Name),
		Email: strings.TrimSpace(cmd.Email),
	})
	if err != nil {
		return ContributorDTO{}, err
	}

	s.log.WithField("contributor_id", c.ID).Info("contributor created")
	return toContributorDTO(c), nil
}

func (s *ContributorService) Update(ctx context.Context, cmd UpdateContributorCommand) (ContributorDTO, error) {
	if err := validateContributor(cmd.Name, cmd.Email); err != nil {
		return ContributorDTO{}, err
	}

	c, err := s.repo.Update(ctx, domain.Contributor{
		ID:    cmd.ID,
		Name:  strings.TrimSpace(cmd.Name),
		Email: strings.TrimSpace(cmd.Email),
	})
	if err != nil {
		return ContributorDTO{}, err
	}

	s.log.WithField("contributor_id", c.ID).Info("contributor updated")
	return toContributorDTO(c), nil
}

func (s *ContributorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("contributor_id", id).Info("contributor deleted")
	return nil
}

func validateContributor(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is malformed", domain.ErrValidation)
	}
	return nil
}

func toContributorDTO(c domain.Contributor) ContributorDTO {
	return ContributorDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
