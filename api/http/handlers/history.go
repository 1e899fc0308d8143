package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/careerfit/screening/api/http/presenter"
	"github.com/careerfit/screening/pkg/screening"
)

// HistoryHandler serves a user's stored screening runs.
type HistoryHandler struct {
	repo screening.Repository
	log  *zap.Logger
}

func NewHistoryHandler(repo screening.Repository, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

// List returns the caller's screening history, newest first.
// @Summary List screenings
// @Tags    screening
// @Produce json
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} screening.Record
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /screenings [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	ownerID, ok := ownerFromLocals(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 50)
	recs, err := h.repo.ListByOwner(c.Context(), ownerID, limit, offset)
	if err != nil {
		h.log.Error("failed to list screenings", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "failed to list screenings")
	}
	if recs == nil {
		recs = []screening.Record{}
	}
	return presenter.JSON(c, http.StatusOK, recs)
}

// Get returns a single screening run owned by the caller.
// @Summary Get screening
// @Tags    screening
// @Produce json
// @Param   id path string true "screening id"
// @Security BearerAuth
// @Success 200 {object} screening.Record
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /screenings/{id} [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := ownerFromLocals(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid screening id")
	}
	rec, err := h.repo.GetByIDForOwner(c.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "screening not found")
		}
		h.log.Error("failed to load screening", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "failed to load screening")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
