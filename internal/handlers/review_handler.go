package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/httpresp"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	ucReview "github.com/BruksfildServices01/pro-booking/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucReview.CreateReview
}

func NewReviewHandler(create *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{create: create}
}

type CreateReviewRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	AppointmentID  *uint  `json:"appointment_id"`
	Rating         int    `json:"rating" binding:"required"`
	Comment        string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rv, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		CustomerID:     customerID,
		ProfessionalID: req.ProfessionalID,
		AppointmentID:  req.AppointmentID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, rv)
}
