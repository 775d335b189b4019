package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"propapi/internal/model"
)

func TestDocumentRecordRoundTrip(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("665f1f77bcf86cd799439013")
	require.NoError(t, err)
	property, err := primitive.ObjectIDFromHex("665f1f77bcf86cd799439012")
	require.NoError(t, err)
	owner, err := primitive.ObjectIDFromHex("665f1f77bcf86cd799439011")
	require.NoError(t, err)
	created := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

	rec := &model.DocumentRecord{
		ID:          id,
		Name:        "Lease 2026",
		Type:        "contract",
		PropertyID:  property,
		OwnerID:     owner,
		FileSize:    52240,
		MimeType:    "application/pdf",
		StoragePath: "documents/665f1f77bcf86cd799439012/lease-2026.pdf",
		Description: "Signed lease agreement",
		Tags:        []string{"lease", "signed"},
		IsActive:    boolPtr(true),
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
	}

	got := DocumentToRecord(DocumentFromRecord(rec))
	assert.Equal(t, rec, got)
}

func TestDocumentRecordRoundTripDefaults(t *testing.T) {
	rec := &model.DocumentRecord{
		Name:     "Deed",
		Type:     "deed",
		FileSize: 1024,
		MimeType: "application/pdf",
	}

	d := DocumentFromRecord(rec)
	assert.True(t, d.IsActive, "absent flag should read active")
	assert.NotNil(t, d.Tags, "model always carries a tags list")
	assert.Empty(t, d.Tags)

	got := DocumentToRecord(d)
	require.NotNil(t, got.IsActive)
	assert.True(t, *got.IsActive)
	assert.Nil(t, got.Tags, "empty tags should stay off the record")

	got.IsActive = nil
	assert.Equal(t, rec, got)
}

func TestNewDocumentRecord(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	in := &model.DocumentInput{
		Name:        ptr("  Lease 2026  "),
		Type:        ptr(" contract "),
		PropertyID:  ptr("665f1f77bcf86cd799439012"),
		OwnerID:     ptr("665f1f77bcf86cd799439011"),
		FileSize:    ptr(int64(52240)),
		MimeType:    ptr(" application/pdf "),
		StoragePath: ptr(" documents/lease-2026.pdf "),
		Description: ptr("  Signed lease agreement  "),
		Tags:        []string{" lease ", "", "signed"},
	}

	rec := NewDocumentRecord(in, now)
	assert.Equal(t, "Lease 2026", rec.Name)
	assert.Equal(t, "contract", rec.Type)
	assert.Equal(t, "665f1f77bcf86cd799439012", rec.PropertyID.Hex())
	assert.Equal(t, "665f1f77bcf86cd799439011", rec.OwnerID.Hex())
	assert.Equal(t, int64(52240), rec.FileSize)
	assert.Equal(t, "application/pdf", rec.MimeType)
	assert.Equal(t, "documents/lease-2026.pdf", rec.StoragePath)
	assert.Equal(t, "Signed lease agreement", rec.Description)
	assert.Equal(t, []string{"lease", "signed"}, rec.Tags)
	require.NotNil(t, rec.IsActive)
	assert.True(t, *rec.IsActive)
	assert.Equal(t, now, rec.CreatedAt)
	assert.Equal(t, now, rec.UpdatedAt)
}

func TestDocumentFromForm(t *testing.T) {
	t.Run("populated form", func(t *testing.T) {
		in := DocumentFromForm(&model.DocumentForm{
			Name:        " Lease 2026 ",
			Type:        "contract",
			PropertyID:  "665f1f77bcf86cd799439012",
			OwnerID:     "665f1f77bcf86cd799439011",
			Description: " Signed lease agreement ",
			Tags:        "lease, signed",
			FileSize:    "52240",
		})

		require.NotNil(t, in.Name)
		assert.Equal(t, "Lease 2026", *in.Name)
		require.NotNil(t, in.Type)
		assert.Equal(t, "contract", *in.Type)
		require.NotNil(t, in.FileSize)
		assert.Equal(t, int64(52240), *in.FileSize)
		assert.Equal(t, []string{"lease", "signed"}, in.Tags)
		assert.Nil(t, in.MimeType, "mime type never comes from the form")
		assert.Nil(t, in.StoragePath, "storage pointer never comes from the form")
	})

	t.Run("unparsable size stays absent", func(t *testing.T) {
		in := DocumentFromForm(&model.DocumentForm{FileSize: "big"})
		assert.Nil(t, in.FileSize)
	})
}

func TestDocumentToForm(t *testing.T) {
	f := DocumentToForm(&model.Document{
		Name:        "Lease 2026",
		Type:        model.DocumentContract,
		PropertyID:  "665f1f77bcf86cd799439012",
		OwnerID:     "665f1f77bcf86cd799439011",
		Description: "Signed lease agreement",
		Tags:        []string{"lease", "signed"},
		FileSize:    52240,
	})

	assert.Equal(t, "Lease 2026", f.Name)
	assert.Equal(t, "contract", f.Type)
	assert.Equal(t, "lease, signed", f.Tags)
	assert.Equal(t, "52240", f.FileSize)
}
