package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadehouse/fadehouse-api/internal/audit"
	"github.com/fadehouse/fadehouse-api/internal/httperr"
	"github.com/fadehouse/fadehouse-api/internal/middleware"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

type TestimonialHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTestimonialHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *TestimonialHandler {
	return &TestimonialHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateTestimonialRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Quote      string `json:"quote" binding:"required"`
	Rating     int    `json:"rating" binding:"min=0,max=5"`
}

type UpdateTestimonialRequest struct {
	Quote     *string `json:"quote,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// --------- Handlers ---------

func (h *TestimonialHandler) List(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {

		httperr.Internal(c, "failed_to_list_testimonials", "Could not list testimonials.")
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	t := models.Testimonial{
		AuthorName: req.AuthorName,
		Quote:      req.Quote,
		Rating:     rating,
	}
	if err := h.db.Create(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Could not create the testimonial.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "testimonial_created",
		Entity:   "testimonial",
		EntityID: &t.ID,
	})

	c.JSON(http.StatusCreated, t)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var t models.Testimonial
	if err := h.db.First(&t, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_testimonial", "Could not load the testimonial.")
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Quote != nil {
		t.Quote = *req.Quote
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if req.Published != nil {
		t.Published = *req.Published
	}

	if err := h.db.Save(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_update_testimonial", "Could not update the testimonial.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "testimonial_updated",
		Entity:   "testimonial",
		EntityID: &t.ID,
	})

	c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_testimonial", "Could not delete the testimonial.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "testimonial_deleted",
		Entity:   "testimonial",
		EntityID: &id,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
