package handlers

import (
	"context"
	"fmt"
	"io"

	"file-converter/internal/domain/dto"
	"file-converter/internal/domain/mapper"
	"file-converter/internal/usecases"
	apperrors "file-converter/pkg/errors"
	"file-converter/pkg/file"

	"github.com/gofiber/fiber/v2"
)

type ConvertHandler struct {
	converterService usecases.ConverterService
}

func NewConvertHandler(converterService usecases.ConverterService) *ConvertHandler {
	return &ConvertHandler{
		converterService: converterService,
	}
}

// AcceptFiles
//
// @Summary      Accept Files
// @Description  Tracks the submitted files as pending conversion entries
// @Tags         Convert
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Files to convert"
// @Success      201    {object}  dto.AcceptResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /files [post]
func (h *ConvertHandler) AcceptFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(dto.ErrorResponse{
			Error: "Invalid multipart form",
		})
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return c.Status(400).JSON(dto.ErrorResponse{
			Error: "No files submitted",
		})
	}

	response := dto.AcceptResponse{}
	for _, fh := range fileHeaders {
		// Acceptance is pre-filtered by extension; anything else never
		// reaches the orchestrator.
		if !file.IsImageFile(fh.Filename) && !file.IsVideoFile(fh.Filename) {
			response.Rejected = append(response.Rejected, fh.Filename)
			continue
		}

		src, err := fh.Open()
		if err != nil {
			return apperrors.HandleError(c, apperrors.ErrInvalidFile(err))
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return apperrors.HandleError(c, apperrors.ErrInvalidFile(err))
		}

		entry, err := h.converterService.Accept(fh.Filename, fh.Header.Get("Content-Type"), data)
		if err != nil {
			return apperrors.HandleError(c, err)
		}
		response.Accepted = append(response.Accepted, mapper.ToEntryResponse(entry))
	}

	if len(response.Accepted) == 0 {
		return c.Status(400).JSON(dto.ErrorResponse{
			Error: "No accepted files",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// SetFormat
//
// @Summary      Set Output Format
// @Description  Updates the requested output format of a pending entry; ignored once conversion has started
// @Tags         Convert
// @Accept       json
// @Produce      json
// @Param        id      path      string                true  "Entry ID"
// @Param        format  body      dto.SetFormatRequest  true  "Requested format"
// @Success      200     {object}  dto.EntryResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /files/{id}/format [patch]
func (h *ConvertHandler) SetFormat(c *fiber.Ctx) error {
	req := &dto.SetFormatRequest{}
	if err := c.BodyParser(req); err != nil || req.Format == "" {
		return c.Status(400).JSON(dto.ErrorResponse{
			Error: "Missing format",
		})
	}

	id := c.Params("id")
	h.converterService.SetOutputFormat(id, req.Format)

	entry, err := h.converterService.Get(id)
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(mapper.ToEntryResponse(entry))
}

// Convert
//
// @Summary      Convert
// @Description  Starts the conversion of a pending entry in the background
// @Tags         Convert
// @Produce      json
// @Param        id  path      string  true  "Entry ID"
// @Success      202 {object}  dto.ConvertResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      503 {object}  dto.ErrorResponse
// @Router       /files/{id}/convert [post]
func (h *ConvertHandler) Convert(c *fiber.Ctx) error {
	if !h.converterService.Ready() {
		return apperrors.HandleError(c, apperrors.ErrEngineNotReady(nil))
	}

	id := c.Params("id")
	entry, err := h.converterService.Get(id)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	// Detached from the request: once started, a conversion runs to
	// completion or failure. The service logs its own outcome.
	go func() {
		_ = h.converterService.Convert(context.Background(), entry.ID)
	}()

	return c.Status(fiber.StatusAccepted).JSON(dto.ConvertResponse{
		ID:     entry.ID,
		Status: "converting",
	})
}

// ListEntries
//
// @Summary      List Entries
// @Tags         Convert
// @Produce      json
// @Success      200  {array}  dto.EntryResponse
// @Router       /files [get]
func (h *ConvertHandler) ListEntries(c *fiber.Ctx) error {
	entries, err := h.converterService.List()
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(mapper.ToEntryResponses(entries))
}

// GetEntry
//
// @Summary      Get Entry
// @Tags         Convert
// @Produce      json
// @Param        id  path      string  true  "Entry ID"
// @Success      200 {object}  dto.EntryResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /files/{id} [get]
func (h *ConvertHandler) GetEntry(c *fiber.Ctx) error {
	entry, err := h.converterService.Get(c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(mapper.ToEntryResponse(entry))
}

// Download
//
// @Summary      Download Output
// @Description  Streams the converted resource of a completed entry
// @Tags         Convert
// @Produce      octet-stream
// @Param        id  path  string  true  "Entry ID"
// @Success      200
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /files/{id}/download [get]
func (h *ConvertHandler) Download(c *fiber.Ctx) error {
	data, mimeType, downloadName, err := h.converterService.Output(c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, mimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, downloadName))
	return c.Send(data)
}

// Preview
//
// @Summary      Preview
// @Description  Returns the preview resource registered at acceptance time
// @Tags         Convert
// @Produce      octet-stream
// @Param        id  path  string  true  "Entry ID"
// @Success      200
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /files/{id}/preview [get]
func (h *ConvertHandler) Preview(c *fiber.Ctx) error {
	data, mimeType, err := h.converterService.Preview(c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, mimeType)
	return c.Send(data)
}

// RemoveEntry
//
// @Summary      Remove Entry
// @Description  Drops an entry at any status; an in-flight conversion is discarded on resolution
// @Tags         Convert
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /files/{id} [delete]
func (h *ConvertHandler) RemoveEntry(c *fiber.Ctx) error {
	if err := h.converterService.Remove(c.Params("id")); err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
