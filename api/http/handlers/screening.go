package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerfit/screening/api/http/presenter"
	"github.com/careerfit/screening/pkg/resume"
	"github.com/careerfit/screening/pkg/screening"
)

type ScreeningHandler struct {
	svc  screening.UseCase
	repo screening.Repository
	log  *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewScreeningHandler(svc screening.UseCase, repo screening.Repository, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{svc: svc, repo: repo, log: log, maxBytes: 15 << 20} // 15MB
}

type analyzeResponse struct {
	screening.Result
	Filename    string `json:"filename"`
	ScreeningID string `json:"screening_id,omitempty"`
}

// Analyze classifies an uploaded resume (PDF/DOCX/TXT) and returns ranked
// role recommendations with skill matches, job links and interview prep.
// @Summary Analyze resume
// @Description Accepts a resume file, extracts its text and runs the screening pipeline.
// @Tags    screening
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} presenter.ErrorResponse "validation or file reading error"
// @Failure 500 {object} presenter.ErrorResponse "internal service error"
// @Router  /screening/analyze [post]
func (h *ScreeningHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ExtractText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}

	result, err := h.svc.Screen(c.Context(), text)
	if err != nil {
		if errors.Is(err, screening.ErrTextTooShort) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		h.log.Error("screening failed", zap.String("filename", fh.Filename), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "screening failed")
	}

	resp := analyzeResponse{Result: result, Filename: fh.Filename}
	// Persist history only for authenticated uploads
	if h.repo != nil {
		if ownerID, ok := ownerFromLocals(c); ok {
			rec := screening.Record{
				ID:         uuid.New(),
				OwnerID:    ownerID,
				Filename:   fh.Filename,
				Role:       result.PrimaryRole,
				Confidence: result.PrimaryConfidence,
				Result:     result,
			}
			if err := h.repo.Create(c.Context(), rec); err != nil {
				h.log.Error("failed to save screening history", zap.Error(err))
			} else {
				resp.ScreeningID = rec.ID.String()
			}
		}
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

func ownerFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals("userId").(string)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
