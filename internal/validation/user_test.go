package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propapi/internal/identity"
	"propapi/internal/model"
)

func TestUserFieldErrors(t *testing.T) {
	valid := func() *model.UserInput {
		return &model.UserInput{
			Name:  ptr("Jane Owner"),
			Email: ptr("jane@example.com"),
			Role:  ptr("owner"),
		}
	}

	tests := []struct {
		name     string
		in       *model.UserInput
		op       model.Operation
		messages []string
	}{
		{
			name: "valid create",
			in:   valid(),
			op:   model.OperationCreate,
		},
		{
			name: "empty create reports every required field",
			in:   &model.UserInput{},
			op:   model.OperationCreate,
			messages: []string{
				"Name is required",
				"Email is required",
				"Role is required",
			},
		},
		{
			name: "empty update reports nothing",
			in:   &model.UserInput{},
			op:   model.OperationUpdate,
		},
		{
			name:     "present but blank fails on update too",
			in:       &model.UserInput{Name: ptr("   ")},
			op:       model.OperationUpdate,
			messages: []string{"Name is required"},
		},
		{
			name: "name too short",
			in: func() *model.UserInput {
				in := valid()
				in.Name = ptr("J")
				return in
			}(),
			op:       model.OperationCreate,
			messages: []string{"Name must be between 2 and 100 characters"},
		},
		{
			name: "name too long",
			in: func() *model.UserInput {
				in := valid()
				in.Name = ptr(strings.Repeat("a", 101))
				return in
			}(),
			op:       model.OperationCreate,
			messages: []string{"Name must be between 2 and 100 characters"},
		},
		{
			name: "bad email format",
			in: func() *model.UserInput {
				in := valid()
				in.Email = ptr("not-an-email")
				return in
			}(),
			op:       model.OperationCreate,
			messages: []string{"Invalid email format"},
		},
		{
			name: "unknown role lists the allowed set",
			in: func() *model.UserInput {
				in := valid()
				in.Role = ptr("landlord")
				return in
			}(),
			op:       model.OperationCreate,
			messages: []string{"Role must be one of: admin, owner, tenant"},
		},
		{
			name: "well formed phone",
			in: func() *model.UserInput {
				in := valid()
				in.Phone = ptr("(300) 123-4567")
				return in
			}(),
			op: model.OperationCreate,
		},
		{
			name: "malformed phone",
			in: func() *model.UserInput {
				in := valid()
				in.Phone = ptr("300-123-4567")
				return in
			}(),
			op:       model.OperationCreate,
			messages: []string{"Phone must be in format (XXX) XXX-XXXX"},
		},
		{
			name:     "phone checked on update when present",
			in:       &model.UserInput{Phone: ptr("12345")},
			op:       model.OperationUpdate,
			messages: []string{"Phone must be in format (XXX) XXX-XXXX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := resultFrom(UserFieldErrors(tt.in, tt.op))
			assert.Equal(t, len(tt.messages) == 0, res.Valid)
			assert.Equal(t, tt.messages, res.Messages())
		})
	}
}

func TestValidateUserEmailUniqueness(t *testing.T) {
	in := func() *model.UserInput {
		return &model.UserInput{
			Name:  ptr("Jane Owner"),
			Email: ptr("Jane@Example.com "),
			Role:  ptr("owner"),
		}
	}

	t.Run("free email passes", func(t *testing.T) {
		v, _, _, emails := newTestValidator(t)
		// Lookups run against the canonical lowercased form.
		emails.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(nil, identity.ErrNotFound).Once()

		res := v.ValidateUser(authCtx(), in(), model.OperationCreate)

		assert.True(t, res.Valid)
		emails.AssertExpectations(t)
	})

	t.Run("taken email is a duplicate", func(t *testing.T) {
		v, _, _, emails := newTestValidator(t)
		emails.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(&identity.Account{UID: "u-1", Email: "jane@example.com"}, nil).Once()

		res := v.ValidateUser(authCtx(), in(), model.OperationCreate)

		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeDuplicate, res.Errors[0].Code)
		assert.Equal(t, "Email already exists", res.Errors[0].Message)
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		v, _, _, emails := newTestValidator(t)
		emails.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(nil, errors.New("identity service returned 503")).Once()

		res := v.ValidateUser(authCtx(), in(), model.OperationCreate)

		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeLookupFailed, res.Errors[0].Code)
		assert.Equal(t, "Error checking email uniqueness", res.Errors[0].Message)
	})

	t.Run("update never checks uniqueness", func(t *testing.T) {
		v, _, _, emails := newTestValidator(t)

		res := v.ValidateUser(authCtx(), in(), model.OperationUpdate)

		assert.True(t, res.Valid)
		emails.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestDuplicateEmailError(t *testing.T) {
	err := DuplicateEmailError()

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Email already exists", valErr.Error())
}
