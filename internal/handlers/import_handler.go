package handlers

import (
	"errors"
	"net/http"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// maxImportSize bounds uploads to 10 MiB
const maxImportSize = 10 << 20

// ImportHandler handles file upload HTTP requests
type ImportHandler struct {
	importService services.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportCSV loads transactions from an uploaded CSV file
// @Summary Import CSV
// @Description Validate and insert the rows of an uploaded CSV file. Any invalid row rejects the whole file with zero rows inserted.
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with date, description, categorie, montant, and type columns"
// @Success 201 {object} dto.ImportResponse "Number of rows inserted"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_* - Rejected file"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /import [post]
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("A CSV file is required in the 'file' field"))
	}

	if fileHeader.Size > maxImportSize {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("File exceeds the 10 MiB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	inserted, err := h.importService.ImportCSV(file)
	if err != nil {
		if code, ok := mapImportError(err); ok {
			return SendError(c, code, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ImportResponse{Inserted: inserted})
}

// mapImportError maps import sentinel errors to API error codes
func mapImportError(err error) (apierrors.ErrorCode, bool) {
	switch {
	case errors.Is(err, services.ErrImportMissingColumns):
		return apierrors.ImportMissingColumns, true
	case errors.Is(err, services.ErrImportInvalidRow):
		return apierrors.ImportMalformedRow, true
	case errors.Is(err, services.ErrImportUnreadable):
		return apierrors.ImportUnreadable, true
	case errors.Is(err, services.ErrImportEmpty):
		return apierrors.ImportEmpty, true
	}
	return "", false
}
