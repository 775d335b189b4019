package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/storage"
	"propapi/internal/transform"
	"propapi/internal/validation"
)

// downloadTTL bounds how long a presigned document link stays usable.
const downloadTTL = 15 * time.Minute

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentUpload carries the stream metadata accompanying an upload. The
// input holds the caller-supplied fields; file size, MIME type and the
// storage pointer are filled in by the upload pipeline.
type DocumentUpload struct {
	Input            *model.DocumentInput
	OriginalFilename string
	ContentType      string
	Size             int64
}

// DocumentService defines the use cases for property documents.
type DocumentService interface {
	// Upload validates the metadata, stores the content, saves the record,
	// and rolls the object back if the record save fails.
	Upload(ctx context.Context, r io.Reader, up DocumentUpload) (*model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// List returns documents using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// ListByProperty returns the documents attached to the given property.
	ListByProperty(ctx context.Context, propertyID string, limit, offset int) (*DocumentListResult, error)

	// Download returns a time-limited URL for the document's content.
	Download(ctx context.Context, id string) (string, error)

	// Update validates the present fields as a documents update and
	// applies them. File content is immutable; re-upload instead.
	Update(ctx context.Context, id string, in *model.DocumentInput) (*model.Document, error)

	// Delete removes the object from storage, then deletes the record.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store    storage.Storage
	repo     repository.DocumentRepository
	v        *validation.Validator
	notifier NotificationService
	log      *zap.Logger
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, v *validation.Validator, notifier NotificationService, log *zap.Logger) DocumentService {
	return &documentService{store: store, repo: repo, v: v, notifier: notifier, log: log}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, up DocumentUpload) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	in := up.Input
	if in == nil {
		in = &model.DocumentInput{}
	}

	// Object key: slug of the original name plus a UUID, so keys stay
	// readable in the bucket without ever colliding.
	ext := filepath.Ext(up.OriginalFilename)
	genName := uuid.New().String() + ext
	if slug := transform.Slugify(strings.TrimSuffix(up.OriginalFilename, ext)); slug != "" {
		genName = slug + "-" + genName
	}
	key := filepath.ToSlash(filepath.Join("documents", genName))

	// The pipeline owns these three fields; callers cannot spoof them.
	in.FileSize = &up.Size
	in.MimeType = &up.ContentType
	in.StoragePath = &key

	if err := s.v.ValidateDocument(ctx, in, model.OperationCreate).Err(); err != nil {
		return nil, err
	}

	// Upload to object storage
	if _, err := s.store.Put(ctx, key, r, storage.PutOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Metadata: map[string]string{
			"original-filename": up.OriginalFilename,
		},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	// Save metadata to the document store
	doc, err := s.repo.Create(ctx, in)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.notifyOwner(ctx, doc)
	return doc, nil
}

// notifyOwner tells the owner a document landed on their property. Best
// effort; the upload already succeeded.
func (s *documentService) notifyOwner(ctx context.Context, doc *model.Document) {
	title := "New document uploaded"
	msg := fmt.Sprintf("%s (%s) was attached to your property",
		doc.Name, transform.FormatFileSize(doc.FileSize))
	in := &model.NotificationInput{UserID: &doc.OwnerID, Title: &title, Message: &msg}
	if _, err := s.notifier.Send(ctx, in); err != nil {
		s.log.Warn("owner notification not sent",
			zap.String("documentId", doc.ID), zap.Error(err))
	}
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return doc, nil
}

func (s *documentService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	res, err := s.repo.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) ListByProperty(ctx context.Context, propertyID string, limit, offset int) (*DocumentListResult, error) {
	if propertyID == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.ListByProperty(ctx, propertyID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) Download(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	name := transform.Slugify(doc.Name)
	if name == "" {
		name = "document"
	}
	name += filepath.Ext(doc.StoragePath)
	return s.store.PresignGet(ctx, doc.StoragePath, name, downloadTTL)
}

func (s *documentService) Update(ctx context.Context, id string, in *model.DocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.v.ValidateDocument(ctx, in, model.OperationUpdate).Err(); err != nil {
		return nil, err
	}
	doc, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	// Find the document to get its storage path
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	// Delete from storage first; if this fails, keep the record so the
	// storage pointer is not lost
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	// Delete the record (repository ignores missing records as per contract)
	return s.repo.Delete(ctx, id)
}
