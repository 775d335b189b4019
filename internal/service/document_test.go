package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"propapi/internal/model"
	"propapi/internal/repository"
	repoMocks "propapi/internal/repository/mocks"
	"propapi/internal/storage"
	storeMocks "propapi/internal/storage/mocks"
	"propapi/internal/validation"
)

func validDocumentUpload() DocumentUpload {
	return DocumentUpload{
		Input: &model.DocumentInput{
			Name:       ptr("Lease 2026"),
			Type:       ptr("contract"),
			PropertyID: ptr(propertyID),
			OwnerID:    ptr(ownerID),
		},
		OriginalFilename: "Lease Agreement.pdf",
		ContentType:      "application/pdf",
		Size:             8,
	}
}

func newDocumentFixture(t *testing.T) (*storeMocks.MockStorage, *repoMocks.MockDocumentRepository, *mockNotifier, DocumentService) {
	t.Helper()
	store := new(storeMocks.MockStorage)
	repo := new(repoMocks.MockDocumentRepository)
	notifier := new(mockNotifier)
	svc := NewDocumentService(store, repo, passingValidator(t), notifier, zaptest.NewLogger(t))
	return store, repo, notifier, svc
}

func isGeneratedKey(key string) bool {
	return strings.HasPrefix(key, "documents/lease-agreement-") && strings.HasSuffix(key, ".pdf")
}

func TestDocumentServiceUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the object then the record", func(t *testing.T) {
		store, repo, notifier, svc := newDocumentFixture(t)
		r := strings.NewReader("%PDF-1.7")

		store.On("Put", mock.Anything, mock.MatchedBy(isGeneratedKey), r, storage.PutOptions{
			Size:        8,
			ContentType: "application/pdf",
			Metadata:    map[string]string{"original-filename": "Lease Agreement.pdf"},
		}).Return(storage.ObjectInfo{Size: 8}, nil)

		created := &model.Document{
			ID:       "665f1f77bcf86cd799439013",
			Name:     "Lease 2026",
			OwnerID:  ownerID,
			FileSize: 52240,
		}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.DocumentInput) bool {
			return in.StoragePath != nil && isGeneratedKey(*in.StoragePath) &&
				in.FileSize != nil && *in.FileSize == 8 &&
				in.MimeType != nil && *in.MimeType == "application/pdf"
		})).Return(created, nil)
		notifier.On("Send", mock.Anything, mock.MatchedBy(func(n *model.NotificationInput) bool {
			return *n.UserID == ownerID &&
				*n.Title == "New document uploaded" &&
				strings.Contains(*n.Message, "52 kB")
		})).Return(&model.Notification{ID: "665f1f77bcf86cd799439031"}, nil)

		got, err := svc.Upload(ctx, r, validDocumentUpload())
		require.NoError(t, err)
		assert.Equal(t, created, got)
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, _, _, svc := newDocumentFixture(t)
		_, err := svc.Upload(ctx, nil, validDocumentUpload())
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("invalid metadata never reaches storage", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		up := validDocumentUpload()
		up.Input.Type = ptr("lease")

		_, err := svc.Upload(ctx, strings.NewReader("%PDF-1.7"), up)
		var vErr *validation.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "Type must be one of:")
		store.AssertNotCalled(t, "Put")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("storage failure aborts the upload", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket down"))

		_, err := svc.Upload(ctx, strings.NewReader("%PDF-1.7"), validDocumentUpload())
		assert.EqualError(t, err, "upload to storage: bucket down")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("record failure rolls the object back", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		store.On("Delete", mock.Anything, mock.MatchedBy(isGeneratedKey)).Return(nil)

		_, err := svc.Upload(ctx, strings.NewReader("%PDF-1.7"), validDocumentUpload())
		assert.EqualError(t, err, "db save failed: boom")
		store.AssertExpectations(t)
	})

	t.Run("rollback failure reports both errors", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		store.On("Delete", mock.Anything, mock.Anything).Return(errors.New("kaboom"))

		_, err := svc.Upload(ctx, strings.NewReader("%PDF-1.7"), validDocumentUpload())
		assert.EqualError(t, err, "db save failed: boom; rollback delete failed: kaboom")
	})

	t.Run("notification failure does not fail the upload", func(t *testing.T) {
		store, repo, notifier, svc := newDocumentFixture(t)

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(&model.Document{ID: "665f1f77bcf86cd799439013", OwnerID: ownerID}, nil)
		notifier.On("Send", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		got, err := svc.Upload(ctx, strings.NewReader("%PDF-1.7"), validDocumentUpload())
		require.NoError(t, err)
		assert.NotNil(t, got)
		notifier.AssertExpectations(t)
	})

	t.Run("missing input validates as an empty create", func(t *testing.T) {
		_, _, _, svc := newDocumentFixture(t)

		up := validDocumentUpload()
		up.Input = nil

		_, err := svc.Upload(ctx, strings.NewReader("%PDF-1.7"), up)
		var vErr *validation.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "Name is required")
	})
}

func TestDocumentServiceGet(t *testing.T) {
	ctx := context.Background()
	const id = "665f1f77bcf86cd799439013"

	t.Run("found", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		want := &model.Document{ID: id}
		repo.On("FindByID", mock.Anything, id).Return(want, nil)

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, _, _, svc := newDocumentFixture(t)
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDocumentServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("all documents", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		repo.On("List", mock.Anything, repository.PageQuery{Limit: 10}).
			Return(&repository.PageResult[model.Document]{Items: []model.Document{{ID: "665f1f77bcf86cd799439013"}}, Total: 1}, nil)

		res, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("scoped to a property", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		repo.On("ListByProperty", mock.Anything, propertyID, repository.PageQuery{Limit: 10}).
			Return(&repository.PageResult[model.Document]{Total: 0}, nil)

		res, err := svc.ListByProperty(ctx, propertyID, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, res.Total)
		repo.AssertExpectations(t)
	})

	t.Run("missing property id", func(t *testing.T) {
		_, _, _, svc := newDocumentFixture(t)
		_, err := svc.ListByProperty(ctx, "", 10, 0)
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDocumentServiceDownload(t *testing.T) {
	ctx := context.Background()
	const id = "665f1f77bcf86cd799439013"

	t.Run("presigns the stored object", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(&model.Document{
			ID:          id,
			Name:        "Lease 2026",
			StoragePath: "documents/lease-2026-4a7d.pdf",
		}, nil)
		store.On("PresignGet", mock.Anything, "documents/lease-2026-4a7d.pdf", "lease-2026.pdf", downloadTTL).
			Return("https://minio.local/bucket/documents/lease-2026-4a7d.pdf?X-Amz-Signature=abc", nil)

		url, err := svc.Download(ctx, id)
		require.NoError(t, err)
		assert.Contains(t, url, "X-Amz-Signature")
		store.AssertExpectations(t)
	})

	t.Run("unsluggable names fall back to document", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(&model.Document{
			ID:          id,
			Name:        "###",
			StoragePath: "documents/4a7d.pdf",
		}, nil)
		store.On("PresignGet", mock.Anything, "documents/4a7d.pdf", "document.pdf", downloadTTL).
			Return("https://minio.local/signed", nil)

		_, err := svc.Download(ctx, id)
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

		_, err := svc.Download(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, _, _, svc := newDocumentFixture(t)
		_, err := svc.Download(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDocumentServiceUpdate(t *testing.T) {
	ctx := context.Background()
	const id = "665f1f77bcf86cd799439013"

	t.Run("metadata updates apply", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		in := &model.DocumentInput{Description: ptr("Countersigned copy")}
		want := &model.Document{ID: id, Description: "Countersigned copy"}
		repo.On("Update", mock.Anything, id, in).Return(want, nil)

		got, err := svc.Update(ctx, id, in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid field never reaches the store", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		long := strings.Repeat("d", 501)
		_, err := svc.Update(ctx, id, &model.DocumentInput{Description: &long})
		var vErr *validation.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "Description must be at most 500 characters")
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("not found", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		repo.On("Update", mock.Anything, id, mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, id, &model.DocumentInput{Description: ptr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentServiceDelete(t *testing.T) {
	ctx := context.Background()
	const id = "665f1f77bcf86cd799439013"

	t.Run("removes the object then the record", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(&model.Document{
			ID:          id,
			StoragePath: "documents/lease-2026-4a7d.pdf",
		}, nil)
		store.On("Delete", mock.Anything, "documents/lease-2026-4a7d.pdf").Return(nil)
		repo.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, svc.Delete(ctx, id))
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("storage failure keeps the record", func(t *testing.T) {
		store, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(&model.Document{
			ID:          id,
			StoragePath: "documents/lease-2026-4a7d.pdf",
		}, nil)
		store.On("Delete", mock.Anything, mock.Anything).Return(errors.New("bucket down"))

		err := svc.Delete(ctx, id)
		assert.EqualError(t, err, "delete storage: bucket down")
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("not found", func(t *testing.T) {
		_, repo, _, svc := newDocumentFixture(t)

		repo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
	})
}
