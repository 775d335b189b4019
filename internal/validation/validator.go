// Package validation implements the portal's server-side validation core:
// per-entity field rules, referential checks against the document store
// and the identity service, and the entry point that dispatches a
// {collection, data, operation} request to the matching validator set.
//
// Validation never mutates state. It reports pass/fail plus an error
// list; persistence happens elsewhere, after a passing result.
package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"propapi/internal/auth"
	"propapi/internal/identity"
	"propapi/internal/model"
)

// UserSource is the slice of the user store the referential checks need.
type UserSource interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// PropertySource is the slice of the property store the referential
// checks need.
type PropertySource interface {
	FindByID(ctx context.Context, id string) (*model.Property, error)
}

// Validator runs the validator sets against injected lookup sources.
// It holds no per-request state; one instance serves all requests.
type Validator struct {
	users      UserSource
	properties PropertySource
	emails     identity.Directory
	log        *zap.Logger
}

// New constructs a Validator over the given lookup sources.
func New(users UserSource, properties PropertySource, emails identity.Directory, log *zap.Logger) *Validator {
	return &Validator{users: users, properties: properties, emails: emails, log: log}
}

// Request is the envelope accepted by the validation entry point.
type Request struct {
	Collection string          `json:"collection"`
	Data       json.RawMessage `json:"data"`
	Operation  string          `json:"operation"`
}

// Validate checks the request shape, decodes data into the collection's
// input variant and runs the matching validator set. A RequestError means
// the call itself was malformed and no validator ran; an invalid Result
// is a completed call reporting problems with the data.
func (v *Validator) Validate(ctx context.Context, req Request) (*Result, error) {
	if _, ok := auth.CallerFrom(ctx); !ok {
		return nil, ErrUnauthenticated
	}
	if req.Collection == "" {
		return nil, badRequestf("collection is required")
	}
	if len(req.Data) == 0 || bytes.Equal(req.Data, []byte("null")) {
		return nil, badRequestf("data is required")
	}
	if req.Operation == "" {
		return nil, badRequestf("operation is required")
	}
	op := model.Operation(req.Operation)
	if op != model.OperationCreate && op != model.OperationUpdate {
		return nil, badRequestf("operation must be one of: %s", strings.Join(model.Operations, ", "))
	}

	switch model.Collection(req.Collection) {
	case model.CollectionUsers:
		var in model.UserInput
		typeErrs, err := decodeData(req.Data, &in)
		if err != nil {
			return nil, err
		}
		return withTypeErrors(typeErrs, v.ValidateUser(ctx, &in, op)), nil
	case model.CollectionProperties:
		var in model.PropertyInput
		typeErrs, err := decodeData(req.Data, &in)
		if err != nil {
			return nil, err
		}
		return withTypeErrors(typeErrs, v.ValidateProperty(ctx, &in, op)), nil
	case model.CollectionDocuments:
		var in model.DocumentInput
		typeErrs, err := decodeData(req.Data, &in)
		if err != nil {
			return nil, err
		}
		return withTypeErrors(typeErrs, v.ValidateDocument(ctx, &in, op)), nil
	default:
		return nil, badRequestf("unknown collection %q, must be one of: %s",
			req.Collection, strings.Join(model.Collections, ", "))
	}
}

// decodeData unmarshals the raw record into the collection's typed input.
// A mistyped field is not a malformed request: it comes back as a
// wrong_type field error and the rest of the record still decodes.
func decodeData(raw json.RawMessage, dst any) ([]FieldError, error) {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil, nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return nil, badRequestf("data must be an object")
		}
		field := typeErr.Field
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[:i] // report the top-level field, not the nested path
		}
		fe := fieldErr(field, CodeWrongType,
			fmt.Sprintf("%s must be a %s", fieldLabel(field), typeWord(typeErr.Type)))
		return []FieldError{fe}, nil
	}
	return nil, badRequestf("data could not be decoded: %v", err)
}

func typeWord(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}

// withTypeErrors folds decode-level type errors into the result, dropping
// any field-rule error for a field that already failed decoding: a field
// the decoder rejected never populated its input slot, so its required
// error would be noise on top of the real problem.
func withTypeErrors(typeErrs []FieldError, res *Result) *Result {
	if len(typeErrs) == 0 {
		return res
	}
	mistyped := make(map[string]bool, len(typeErrs))
	for _, fe := range typeErrs {
		mistyped[fe.Field] = true
	}
	merged := make([]FieldError, 0, len(typeErrs)+len(res.Errors))
	merged = append(merged, typeErrs...)
	for _, fe := range res.Errors {
		if !mistyped[fe.Field] {
			merged = append(merged, fe)
		}
	}
	return resultFrom(merged)
}

// refCheck is one referential lookup. It returns nil when the reference
// is fine and folds its own failures into a field error, so a broken
// store never turns a validation call into a crash.
type refCheck func(ctx context.Context) *FieldError

// runChecks issues the referential checks concurrently and waits for all
// of them; no ordering is guaranteed between the lookups and none is
// needed. Each check writes to its own slot, so the assembled output is
// deterministic regardless of completion order.
func (v *Validator) runChecks(ctx context.Context, checks []refCheck) []FieldError {
	if len(checks) == 0 {
		return nil
	}
	slots := make([]*FieldError, len(checks))
	var g errgroup.Group
	for i, check := range checks {
		i, check := i, check // per-iteration copies; required under go <1.22 loop semantics
		g.Go(func() error {
			slots[i] = check(ctx)
			return nil
		})
	}
	_ = g.Wait() // checks never fail; they fold lookup problems into their slot

	var out []FieldError
	for _, fe := range slots {
		if fe != nil {
			out = append(out, *fe)
		}
	}
	return out
}
