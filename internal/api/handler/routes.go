package handler

import "github.com/gin-gonic/gin"

// Register wires every resource endpoint onto the router.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Welcome)

	r.GET("/ratings", h.ListRatings)
	r.POST("/ratings", h.CreateRating)
	r.GET("/ratings/:id", h.GetRating)
	r.DELETE("/ratings/:id", h.DeleteRating)

	r.GET("/complaints", h.ListComplaints)
	r.POST("/complaints", h.CreateComplaint)
	r.GET("/complaints/:id", h.GetComplaint)
	r.DELETE("/complaints/:id", h.DeleteComplaint)

	r.GET("/healthcheck", h.Healthcheck)
	r.GET("/environment", h.Environment)
}
