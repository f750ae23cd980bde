package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/httperr"
	"github.com/fadehouse/fadehouse-api/internal/httpresp"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

// PublicHandler serves the marketing site: the team page and the
// testimonial wall. No auth, read-only.
type PublicHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewPublicHandler(db *gorm.DB, repo domain.Repository) *PublicHandler {
	return &PublicHandler{db: db, repo: repo}
}

func (h *PublicHandler) Team(c *gin.Context) {
	barbers, err := h.repo.ListActiveBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_team", "Could not load the team.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) Testimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {

		httperr.Internal(c, "failed_to_list_testimonials", "Could not load testimonials.")
		return
	}

	httpresp.List(c, testimonials)
}
