package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/transform"
	"propapi/internal/validation"
)

// PropertyListResult is the service-level DTO for paginated properties.
type PropertyListResult struct {
	Items []model.Property `json:"data"`
	Total int              `json:"total"`
}

// PropertyService defines the use cases for managing properties.
type PropertyService interface {
	// Create validates the input as a properties create, inserts the
	// record and notifies the owner.
	Create(ctx context.Context, in *model.PropertyInput) (*model.Property, error)

	// Get returns a single property by its ID.
	Get(ctx context.Context, id string) (*model.Property, error)

	// List returns properties using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*PropertyListResult, error)

	// ListByOwner returns the properties referencing the given owner.
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*PropertyListResult, error)

	// Update validates the present fields as a properties update and
	// applies them.
	Update(ctx context.Context, id string, in *model.PropertyInput) (*model.Property, error)

	// Delete removes a property record permanently.
	Delete(ctx context.Context, id string) error
}

type propertyService struct {
	repo     repository.PropertyRepository
	v        *validation.Validator
	notifier NotificationService
	log      *zap.Logger
}

// NewPropertyService constructs a new PropertyService.
func NewPropertyService(repo repository.PropertyRepository, v *validation.Validator, notifier NotificationService, log *zap.Logger) PropertyService {
	return &propertyService{repo: repo, v: v, notifier: notifier, log: log}
}

func (s *propertyService) Create(ctx context.Context, in *model.PropertyInput) (*model.Property, error) {
	if err := s.v.ValidateProperty(ctx, in, model.OperationCreate).Err(); err != nil {
		return nil, err
	}
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.notifyOwner(ctx, p)
	return p, nil
}

// notifyOwner tells the owner about the new listing. Best effort: the
// property is already stored, so a failed notification is logged and
// swallowed rather than failing the create.
func (s *propertyService) notifyOwner(ctx context.Context, p *model.Property) {
	title := "New property added"
	msg := fmt.Sprintf("%s was added to your portfolio, valued at %s",
		p.Address, transform.FormatCurrency(p.Value))
	in := &model.NotificationInput{UserID: &p.OwnerID, Title: &title, Message: &msg}
	if _, err := s.notifier.Send(ctx, in); err != nil {
		s.log.Warn("owner notification not sent",
			zap.String("propertyId", p.ID), zap.Error(err))
	}
}

func (s *propertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *propertyService) List(ctx context.Context, limit, offset int) (*PropertyListResult, error) {
	res, err := s.repo.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &PropertyListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *propertyService) ListByOwner(ctx context.Context, ownerID string, limit, offset int) (*PropertyListResult, error) {
	if ownerID == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.ListByOwner(ctx, ownerID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &PropertyListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *propertyService) Update(ctx context.Context, id string, in *model.PropertyInput) (*model.Property, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.v.ValidateProperty(ctx, in, model.OperationUpdate).Err(); err != nil {
		return nil, err
	}
	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *propertyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
