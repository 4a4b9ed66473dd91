package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/trattoria/internal/dbx"
	"github.com/dmitrijs2005/trattoria/internal/logging"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/repomanager"
)

// Handler serves the sync API. The server mirrors exactly one profile and
// one onboarding flag; saving replaces whatever was stored before.
type Handler struct {
	db  *sql.DB
	mgr repomanager.RepositoryManager
	log logging.Logger
}

func NewHandler(db *sql.DB, mgr repomanager.RepositoryManager, log logging.Logger) *Handler {
	return &Handler{db: db, mgr: mgr, log: log.With("module", "http")}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) saveProfile(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		c.Status(http.StatusBadRequest)
		return
	}

	err = dbx.WithTx(c.Request.Context(), h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return h.mgr.Profile(tx).Replace(ctx, body)
	})
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to save profile", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) getProfile(c *gin.Context) {
	data, err := h.mgr.Profile(h.db).Get(c.Request.Context())
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to read profile", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}
	if data == nil {
		// No stored document answers as a JSON null.
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte("null"))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *Handler) saveOnboarding(c *gin.Context) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := dbx.WithTx(c.Request.Context(), h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return h.mgr.Onboarding(tx).Set(ctx, req.Completed)
	})
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to save onboarding", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) getOnboarding(c *gin.Context) {
	completed, err := h.mgr.Onboarding(h.db).Get(c.Request.Context())
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to read onboarding", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

func (h *Handler) deleteUser(c *gin.Context) {
	err := dbx.WithTx(c.Request.Context(), h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := h.mgr.Profile(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return h.mgr.Onboarding(tx).DeleteAll(ctx)
	})
	if err != nil {
		h.log.Error(c.Request.Context(), "failed to delete user data", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
