package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ocene/backend/internal/logging"
)

// Maintainer metadata served by the environment dump.
const (
	maintainer = "Matevž Morato"
	gitRepo    = "https://github.com/Paketi-org/"
)

// Welcome answers the root route.
func (h *Handler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome!")
}

// Healthcheck is the orchestrator liveness probe: 200 when the database
// answers a ping, 500 otherwise.
func (h *Handler) Healthcheck(c *gin.Context) {
	log := h.audit(c)

	if err := h.Storage.Ping(c.Request.Context()); err != nil {
		log.Out("healthcheck", logging.StatusFail, http.StatusInternalServerError, "database unreachable")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "failure",
			"results": []gin.H{
				{"checker": "database", "output": err.Error(), "passed": false},
			},
		})
		return
	}

	log.Out("healthcheck", logging.StatusSuccess, http.StatusOK, "database connection ok")
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"results": []gin.H{
			{"checker": "database", "output": "Database connection OK", "passed": true},
		},
	})
}

// Environment dumps static maintainer and repository metadata.
func (h *Handler) Environment(c *gin.Context) {
	log := h.audit(c)
	log.Out("envdump", logging.StatusSuccess, http.StatusOK, "environment data dump")

	c.JSON(http.StatusOK, gin.H{
		"application": gin.H{
			"maintainer": maintainer,
			"git_repo":   gitRepo,
		},
	})
}
