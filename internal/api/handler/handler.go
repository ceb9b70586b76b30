package handler

import (
	"github.com/gin-gonic/gin"

	"ocene/backend/internal/api/middleware"
	"ocene/backend/internal/logging"
	"ocene/backend/internal/storage"
	"ocene/backend/internal/subscribers"
)

// Handler holds the collaborators every endpoint needs: storage, the
// subscriber directory and the injected audit logger.
type Handler struct {
	Storage     storage.Storage
	Subscribers subscribers.Directory
	Audit       *logging.Audit
}

func NewHandler(s storage.Storage, d subscribers.Directory, a *logging.Audit) *Handler {
	return &Handler{Storage: s, Subscribers: d, Audit: a}
}

// audit returns the request-scoped audit logger.
func (h *Handler) audit(c *gin.Context) *logging.Audit {
	return h.Audit.With(c.GetString(middleware.RequestIDKey))
}
