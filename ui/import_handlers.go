package ui

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"greep/domain/sheet"
	"greep/internal/errors"
)

// handleAnalyze accepts a multipart spreadsheet upload and returns the
// engine's ParseResult plus column profiles for the review UI. Nothing is
// written.
func (s *Server) handleAnalyze(c *gin.Context) {
	path, cleanup, err := s.saveUpload(c)
	if err != nil {
		s.renderError(c, err)
		return
	}
	defer cleanup()

	result, err := s.service.Analyze(path)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleConfirm accepts the same upload together with the reviewer-approved
// mappings and performs the write. The "mappings" form field is a JSON array
// of {excel_column_index, product_field}; when absent, the engine's own
// suggestions are applied.
func (s *Server) handleConfirm(c *gin.Context) {
	path, cleanup, err := s.saveUpload(c)
	if err != nil {
		s.renderError(c, err)
		return
	}
	defer cleanup()

	mappings, err := parseMappingOverrides(c.PostForm("mappings"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	result, err := s.service.Import(c.Request.Context(), path, mappings)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := s.service.History(c.Request.Context(), limit)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": records})
}

// parseMappingOverrides tolerantly extracts mappings from the reviewer
// payload; unknown extra fields are ignored.
func parseMappingOverrides(payload string) ([]sheet.Mapping, error) {
	if payload == "" {
		return nil, nil
	}
	if !gjson.Valid(payload) {
		return nil, errors.InvalidInput("mappings payload is not valid JSON")
	}

	root := gjson.Parse(payload)
	items := root.Get("mappings")
	if !items.Exists() {
		items = root // a bare array is accepted too
	}

	var mappings []sheet.Mapping
	for _, item := range items.Array() {
		mappings = append(mappings, sheet.Mapping{
			ColumnIndex: int(item.Get("excel_column_index").Int()),
			FieldKey:    item.Get("product_field").String(),
			Confidence:  item.Get("confidence").Float(),
		})
	}
	return mappings, nil
}

// saveUpload stores the multipart "file" part in the scratch directory and
// returns its path with a cleanup func.
func (s *Server) saveUpload(c *gin.Context) (string, func(), error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", nil, errors.InvalidInput("missing file upload")
	}
	if file.Size > s.cfg.Import.MaxUploadBytes {
		return "", nil, errors.InvalidInput("upload exceeds size limit")
	}

	dst := filepath.Join(s.cfg.Import.TempDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", nil, errors.Wrap(err, "failed to store upload")
	}
	return dst, func() { os.Remove(dst) }, nil
}

// renderError maps AppError codes onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeEmptySheet, errors.CodeUnsupportedFile:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}

	s.log.Error("request failed: %v", err)
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
