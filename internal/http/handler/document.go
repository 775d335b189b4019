package handler

import (
	"github.com/gofiber/fiber/v2"

	"propapi/internal/model"
	"propapi/internal/service"
	"propapi/internal/transform"
)

// UploadDocument stores an uploaded file and its metadata. The request is
// multipart form data with the content under the "file" field and the
// document fields alongside it.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "file is required")
		}

		var form model.DocumentForm
		if err := c.BodyParser(&form); err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		in := transform.DocumentFromForm(&form)
		if in.Name == nil {
			name := fh.Filename
			in.Name = &name
		}

		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}
		doc, err := svc.Upload(c.UserContext(), f, service.DocumentUpload{
			Input:            in,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns a document's metadata by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(doc)
	}
}

// ListDocuments returns documents with limit/offset pagination. A
// propertyId query parameter narrows the listing to one property's files.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := listParams(c)
		if err != nil {
			return respondError(c, err)
		}
		var res *service.DocumentListResult
		if prop := c.Query("propertyId"); prop != "" {
			res, err = svc.ListByProperty(c.UserContext(), prop, limit, offset)
		} else {
			res, err = svc.List(c.UserContext(), limit, offset)
		}
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// ListPropertyDocuments returns the documents attached to the property in
// the path, using the same pagination as the flat listing.
func ListPropertyDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := listParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.ListByProperty(c.UserContext(), c.Params("id"), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// DownloadDocument returns a time-limited URL for the document's content.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// UpdateDocument validates and applies the metadata fields present in the
// body. The stored file itself is immutable.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.DocumentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		doc, err := svc.Update(c.UserContext(), c.Params("id"), &in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes the stored object and its record.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
