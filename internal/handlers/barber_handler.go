package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/httperr"
	"github.com/fadehouse/fadehouse-api/internal/middleware"
	"github.com/fadehouse/fadehouse-api/internal/storage"
	ucBarber "github.com/fadehouse/fadehouse-api/internal/usecase/barber"
)

type BarberHandler struct {
	repo   domain.Repository
	photos *storage.PhotoStore

	createUC *ucBarber.CreateBarber
	updateUC *ucBarber.UpdateBarber
	deleteUC *ucBarber.DeleteBarber
}

func NewBarberHandler(
	repo domain.Repository,
	photos *storage.PhotoStore,
	createUC *ucBarber.CreateBarber,
	updateUC *ucBarber.UpdateBarber,
	deleteUC *ucBarber.DeleteBarber,
) *BarberHandler {
	return &BarberHandler{
		repo:     repo,
		photos:   photos,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name  string `json:"name" binding:"required"`
	Title string `json:"title"`

	// Days is optional; an absent draft means the default pattern.
	Days []ScheduleDayRequest `json:"days"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name,omitempty"`
	Title  *string `json:"title,omitempty"`
	Active *bool   `json:"is_active,omitempty"`

	Days []ScheduleDayRequest `json:"days,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	active := 0
	for _, b := range barbers {
		if b.Active {
			active++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"active":   active,
		"inactive": len(barbers) - active,
		"barbers":  barbers,
	})
}

func (h *BarberHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	week := domain.DefaultWeek()
	if req.Days != nil {
		var err error
		week, err = weekFromRequest(req.Days)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucBarber.CreateBarberInput{
		ActorID: actorID,
		Name:    req.Name,
		Title:   req.Title,
		Week:    week,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Invalid schedule.")
			return
		}
		httperr.Internal(c, "failed_to_create_barber", "Could not create the barber.")
		return
	}

	resp := gin.H{"barber": out.Barber}
	if out.ScheduleErr != nil {
		// barber row committed, schedule insert did not: non-fatal
		resp["schedule_warning"] = "schedule_not_saved"
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BarberHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucBarber.UpdateBarberInput{
		ActorID:  actorID,
		BarberID: barberID,
		Name:     req.Name,
		Title:    req.Title,
		Active:   req.Active,
	}

	if req.Days != nil {
		week, err := weekFromRequest(req.Days)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		in.Week = &week
	}

	out, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Invalid schedule.")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_barber", "Could not update the barber.")
		return
	}

	resp := gin.H{"barber": out.Barber}
	if in.Week != nil {
		resp["schedule"] = out.Result
	}
	if out.ScheduleErr != nil {
		// core fields already committed; partial day writes stand
		resp["schedule_warning"] = "schedule_partially_saved"
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, barberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete the barber.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	barber, err := h.repo.GetBarber(c.Request.Context(), barberID)
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Send the image as the 'photo' form field.")
		return
	}

	url, err := h.photos.UploadBarberPhoto(c.Request.Context(), fileHeader)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not process the image.")
			return
		}
		httperr.Internal(c, "failed_to_upload_photo", "Could not upload the photo.")
		return
	}

	barber.PhotoURL = url
	if err := h.repo.SaveBarber(c.Request.Context(), barber); err != nil {
		httperr.Internal(c, "failed_to_save_photo_url", "Could not save the photo URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

func writeBusinessError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, "Invalid schedule draft.")
		return
	}
	httperr.BadRequest(c, "invalid_request", err.Error())
}
