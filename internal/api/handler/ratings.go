package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ocene/backend/internal/logging"
	"ocene/backend/internal/models"
	"ocene/backend/internal/storage"
	"ocene/backend/internal/subscribers"
)

// ListRatings returns every stored rating.
func (h *Handler) ListRatings(c *gin.Context) {
	log := h.audit(c)
	log.In("get", "list ratings")

	ratings, err := h.Storage.ListRatings(c.Request.Context())
	if err != nil {
		log.Out("get", logging.StatusFail, http.StatusInternalServerError, "list ratings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("get", logging.StatusSuccess, http.StatusOK, "list ratings")
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// CreateRating resolves the subscriber, then inserts the rating. Nothing
// is written when the lookup fails.
func (h *Handler) CreateRating(c *gin.Context) {
	log := h.audit(c)
	log.In("post", "create rating")

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Out("post", logging.StatusFail, http.StatusBadRequest, "create rating: bad request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	name, err := h.Subscribers.Lookup(c.Request.Context(), req.SubscriberID)
	if err != nil {
		if errors.Is(err, subscribers.ErrNotFound) {
			log.Out("post", logging.StatusFail, http.StatusNotFound,
				fmt.Sprintf("create rating: subscriber %d not found", req.SubscriberID))
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("subscriber %d not found", req.SubscriberID)})
			return
		}
		log.Out("post", logging.StatusFail, http.StatusInternalServerError, "create rating: subscriber lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "subscriber lookup failed"})
		return
	}

	rating := models.Rating{ID: req.ID, Ime: name, Ocena: req.Rating}
	if err := h.Storage.SaveRating(c.Request.Context(), &rating); err != nil {
		if errors.Is(err, storage.ErrDuplicateID) {
			log.Out("post", logging.StatusFail, http.StatusConflict,
				fmt.Sprintf("create rating: id %d already exists", req.ID))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("rating %d already exists", req.ID)})
			return
		}
		log.Out("post", logging.StatusFail, http.StatusInternalServerError, "create rating failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("post", logging.StatusSuccess, http.StatusCreated, "rating created")
	c.JSON(http.StatusCreated, rating.Trimmed())
}

// GetRating returns a single rating by id.
func (h *Handler) GetRating(c *gin.Context) {
	log := h.audit(c)
	log.In("get", "get rating")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Out("get", logging.StatusFail, http.StatusNotFound, "get rating: non-integer id")
		c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
		return
	}

	rating, err := h.Storage.GetRating(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Out("get", logging.StatusFail, http.StatusNotFound,
				fmt.Sprintf("rating %d not found", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		log.Out("get", logging.StatusFail, http.StatusInternalServerError, "get rating failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("get", logging.StatusSuccess, http.StatusOK, fmt.Sprintf("rating %d returned", id))
	c.JSON(http.StatusOK, rating)
}

// DeleteRating removes a rating by id, answering 204 with no body.
func (h *Handler) DeleteRating(c *gin.Context) {
	log := h.audit(c)
	log.In("delete", "delete rating")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Out("delete", logging.StatusFail, http.StatusNotFound, "delete rating: non-integer id")
		c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
		return
	}

	if err := h.Storage.DeleteRating(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Out("delete", logging.StatusFail, http.StatusNotFound,
				fmt.Sprintf("rating %d not found, nothing deleted", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		log.Out("delete", logging.StatusFail, http.StatusInternalServerError, "delete rating failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("delete", logging.StatusSuccess, http.StatusNoContent, fmt.Sprintf("rating %d deleted", id))
	c.Status(http.StatusNoContent)
}
