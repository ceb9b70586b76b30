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

// ListComplaints returns every stored complaint.
func (h *Handler) ListComplaints(c *gin.Context) {
	log := h.audit(c)
	log.In("get", "list complaints")

	complaints, err := h.Storage.ListComplaints(c.Request.Context())
	if err != nil {
		log.Out("get", logging.StatusFail, http.StatusInternalServerError, "list complaints failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("get", logging.StatusSuccess, http.StatusOK, "list complaints")
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// CreateComplaint resolves the source subscriber, then the target, and
// only then inserts the complaint. A failed lookup aborts before any
// write, so a target failure after a successful source lookup still
// leaves no row behind.
func (h *Handler) CreateComplaint(c *gin.Context) {
	log := h.audit(c)
	log.In("post", "create complaint")

	var req models.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Out("post", logging.StatusFail, http.StatusBadRequest, "create complaint: bad request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sourceName, err := h.lookupSubscriber(c, log, req.SourceID)
	if err != nil {
		return
	}
	targetName, err := h.lookupSubscriber(c, log, req.TargetID)
	if err != nil {
		return
	}

	complaint := models.Complaint{
		ID:       req.ID,
		ImeVir:   sourceName,
		ImeCilj:  targetName,
		Pritozba: req.Complaint,
	}
	if err := h.Storage.SaveComplaint(c.Request.Context(), &complaint); err != nil {
		if errors.Is(err, storage.ErrDuplicateID) {
			log.Out("post", logging.StatusFail, http.StatusConflict,
				fmt.Sprintf("create complaint: id %d already exists", req.ID))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("complaint %d already exists", req.ID)})
			return
		}
		log.Out("post", logging.StatusFail, http.StatusInternalServerError, "create complaint failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("post", logging.StatusSuccess, http.StatusCreated, "complaint created")
	c.JSON(http.StatusCreated, complaint.Trimmed())
}

// lookupSubscriber resolves one subscriber id and writes the error
// response itself when the lookup fails, naming the failing id.
func (h *Handler) lookupSubscriber(c *gin.Context, log *logging.Audit, id int) (string, error) {
	name, err := h.Subscribers.Lookup(c.Request.Context(), id)
	if err == nil {
		return name, nil
	}
	if errors.Is(err, subscribers.ErrNotFound) {
		log.Out("post", logging.StatusFail, http.StatusNotFound,
			fmt.Sprintf("create complaint: subscriber %d not found", id))
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("subscriber %d not found", id)})
		return "", err
	}
	log.Out("post", logging.StatusFail, http.StatusInternalServerError, "create complaint: subscriber lookup failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "subscriber lookup failed"})
	return "", err
}

// GetComplaint returns a single complaint by id.
func (h *Handler) GetComplaint(c *gin.Context) {
	log := h.audit(c)
	log.In("get", "get complaint")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Out("get", logging.StatusFail, http.StatusNotFound, "get complaint: non-integer id")
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}

	complaint, err := h.Storage.GetComplaint(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Out("get", logging.StatusFail, http.StatusNotFound,
				fmt.Sprintf("complaint %d not found", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		log.Out("get", logging.StatusFail, http.StatusInternalServerError, "get complaint failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("get", logging.StatusSuccess, http.StatusOK, fmt.Sprintf("complaint %d returned", id))
	c.JSON(http.StatusOK, complaint)
}

// DeleteComplaint removes a complaint by id, answering 204 with no body.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	log := h.audit(c)
	log.In("delete", "delete complaint")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Out("delete", logging.StatusFail, http.StatusNotFound, "delete complaint: non-integer id")
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}

	if err := h.Storage.DeleteComplaint(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Out("delete", logging.StatusFail, http.StatusNotFound,
				fmt.Sprintf("complaint %d not found, nothing deleted", id))
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		log.Out("delete", logging.StatusFail, http.StatusInternalServerError, "delete complaint failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
		return
	}

	log.Out("delete", logging.StatusSuccess, http.StatusNoContent, fmt.Sprintf("complaint %d deleted", id))
	c.Status(http.StatusNoContent)
}
