package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/httperr"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

type ScheduleHandler struct {
	repo       domain.Repository
	reconciler *domain.Reconciler
}

func NewScheduleHandler(repo domain.Repository, reconciler *domain.Reconciler) *ScheduleHandler {
	return &ScheduleHandler{repo: repo, reconciler: reconciler}
}

// --------- Requests ---------

type ScheduleDayRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	Working   bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ManagedRowRequest struct {
	ID        uint   `json:"id" binding:"required"`
	Working   bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ManageScheduleRequest struct {
	Rows []ManagedRowRequest `json:"rows" binding:"required"`
}

// weekFromRequest turns the editor's seven day entries into a draft
// week. The week must be total: every day exactly once.
func weekFromRequest(days []ScheduleDayRequest) (domain.Week, error) {
	w := domain.EmptyWeek()

	if len(days) != domain.DaysPerWeek {
		return w, httperr.ErrBusiness("incomplete_week")
	}

	var seen [domain.DaysPerWeek]bool
	for _, d := range days {
		wd := domain.Weekday(d.DayOfWeek)
		if !wd.Valid() {
			return w, httperr.ErrBusiness("invalid_day")
		}
		if seen[wd] {
			return w, httperr.ErrBusiness("duplicate_day")
		}
		seen[wd] = true

		day := w[wd]
		day.Working = d.Working

		if start, err := domain.ParseTime(d.StartTime); err == nil {
			day.Start = start
		} else if d.Working {
			return w, err
		}
		if end, err := domain.ParseTime(d.EndTime); err == nil {
			day.End = end
		} else if d.Working {
			return w, err
		}

		w[wd] = day
	}

	return w, nil
}

type scheduleDayResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	Working   bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func weekResponse(w domain.Week) []scheduleDayResponse {
	days := make([]scheduleDayResponse, 0, domain.DaysPerWeek)
	for _, day := range w {
		days = append(days, scheduleDayResponse{
			DayOfWeek: int(day.Weekday),
			DayName:   day.Weekday.String(),
			Working:   day.Working,
			StartTime: day.Start.String(),
			EndTime:   day.End.String(),
		})
	}
	return days
}

// --------- Handlers ---------

// Get returns the persisted rows for a barber, ordered by weekday.
func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetBarber(c.Request.Context(), barberID); err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	rows, err := h.repo.ListSchedules(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Could not load the schedule.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows": rows,
		"days": weekResponse(domain.WeekFromRows(rows)),
	})
}

// Defaults is the seed for the "add barber" flow.
func (h *ScheduleHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"days": weekResponse(domain.DefaultWeek()),
	})
}

// Manage is the standalone schedule editor's save: every row carries
// its own id, so each is a direct update. Days with no persisted row
// are left alone.
func (h *ScheduleHandler) Manage(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var req ManageScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	persisted, err := h.repo.ListSchedules(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Could not load the schedule.")
		return
	}

	byID := make(map[uint]models.BarberSchedule, len(persisted))
	for _, row := range persisted {
		byID[row.ID] = row
	}

	updates := make([]models.BarberSchedule, 0, len(req.Rows))
	for _, r := range req.Rows {
		row, found := byID[r.ID]
		if !found {
			// not this barber's row (or already gone): skip, never insert
			continue
		}

		row.Working = r.Working
		if start, err := domain.ParseTime(r.StartTime); err == nil {
			row.StartTime = start.Storage()
		} else if r.Working {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
		if end, err := domain.ParseTime(r.EndTime); err == nil {
			row.EndTime = end.Storage()
		} else if r.Working {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}

		updates = append(updates, row)
		byID[r.ID] = row
	}

	// The editor's validity rule gates this save too.
	merged := make([]models.BarberSchedule, 0, len(byID))
	for _, row := range byID {
		merged = append(merged, row)
	}
	if !domain.WeekFromRows(merged).Valid() {
		httperr.BadRequest(c, "end_before_start", "End time must be after start time on working days.")
		return
	}

	updated, err := h.reconciler.UpdateExisting(c.Request.Context(), updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_update_schedule",
			"updated": updated,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "updated": updated})
}

// TimeOptions renders the picker state for a thin client: the current
// selection plus enabled flags for every hour, minute and meridiem
// option, honoring the floor. set_hour / set_minute / set_meridiem
// apply one mutation first (with meridiem auto-flip).
func (h *ScheduleHandler) TimeOptions(c *gin.Context) {
	value, err := domain.ParseTime(c.DefaultQuery("value", "10:00"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "value must be HH:MM.")
		return
	}

	var picker *domain.Picker
	if floorStr := c.Query("floor"); floorStr != "" {
		floor, err := domain.ParseTime(floorStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "floor must be HH:MM.")
			return
		}
		picker = domain.NewPickerWithFloor(value, floor)
	} else {
		picker = domain.NewPicker(value)
	}

	if s := c.Query("set_hour"); s != "" {
		hour, err := strconv.Atoi(s)
		if err != nil || hour < 1 || hour > 12 {
			httperr.BadRequest(c, "invalid_hour", "set_hour must be 1-12.")
			return
		}
		picker.SetHour(hour)
	}
	if s := c.Query("set_minute"); s != "" {
		minute, err := strconv.Atoi(s)
		if err != nil || minute < 0 || minute > 55 || minute%domain.Step != 0 {
			httperr.BadRequest(c, "invalid_minute", "set_minute must be a 5-minute step.")
			return
		}
		picker.SetMinute(minute)
	}
	if s := c.Query("set_meridiem"); s != "" {
		m := domain.Meridiem(s)
		if m != domain.AM && m != domain.PM {
			httperr.BadRequest(c, "invalid_meridiem", "set_meridiem must be AM or PM.")
			return
		}
		picker.SetMeridiem(m)
	}

	type option[T any] struct {
		Value   T    `json:"value"`
		Enabled bool `json:"enabled"`
	}

	hours := make([]option[int], 0, 12)
	for hr := 1; hr <= 12; hr++ {
		hours = append(hours, option[int]{Value: hr, Enabled: picker.HourEnabled(hr)})
	}
	minutes := make([]option[int], 0, 60/domain.Step)
	for m := 0; m < 60; m += domain.Step {
		minutes = append(minutes, option[int]{Value: m, Enabled: picker.MinuteEnabled(m)})
	}

	hour12, minute, meridiem := picker.Value().Clock12()

	c.JSON(http.StatusOK, gin.H{
		"value":    picker.Value().String(),
		"hour":     hour12,
		"minute":   minute,
		"meridiem": meridiem,
		"hours":    hours,
		"minutes":  minutes,
		"meridiems": []option[domain.Meridiem]{
			{Value: domain.AM, Enabled: picker.MeridiemEnabled(domain.AM)},
			{Value: domain.PM, Enabled: picker.MeridiemEnabled(domain.PM)},
		},
	})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be numeric.")
		return 0, false
	}
	return uint(id), true
}
