package service

import (
	"context"
	"errors"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/validation"
)

// UserListResult is the service-level DTO for paginated users.
type UserListResult struct {
	Items []model.User `json:"data"`
	Total int          `json:"total"`
}

// UserService defines the use cases for managing portal users.
type UserService interface {
	// Create validates the input as a users create and inserts the record.
	Create(ctx context.Context, in *model.UserInput) (*model.User, error)

	// Get returns a single user by its ID.
	Get(ctx context.Context, id string) (*model.User, error)

	// List returns users using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*UserListResult, error)

	// Update validates the present fields as a users update and applies them.
	Update(ctx context.Context, id string, in *model.UserInput) (*model.User, error)

	// Deactivate clears the active flag without removing the record.
	Deactivate(ctx context.Context, id string) (*model.User, error)

	// Delete removes a user record permanently.
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
	v    *validation.Validator
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository, v *validation.Validator) UserService {
	return &userService{repo: repo, v: v}
}

func (s *userService) Create(ctx context.Context, in *model.UserInput) (*model.User, error) {
	if err := s.v.ValidateUser(ctx, in, model.OperationCreate).Err(); err != nil {
		return nil, err
	}
	u, err := s.repo.Create(ctx, in)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// The directory lookup and the unique index can disagree when two
		// creates race; the index has the last word.
		return nil, validation.DuplicateEmailError()
	}
	return u, err
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, limit, offset int) (*UserListResult, error) {
	res, err := s.repo.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &UserListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *userService) Update(ctx context.Context, id string, in *model.UserInput) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.v.ValidateUser(ctx, in, model.OperationUpdate).Err(); err != nil {
		return nil, err
	}
	u, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, validation.DuplicateEmailError()
		}
		return nil, mapNotFound(err)
	}
	return u, nil
}

func (s *userService) Deactivate(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	inactive := false
	u, err := s.repo.Update(ctx, id, &model.UserInput{IsActive: &inactive})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
