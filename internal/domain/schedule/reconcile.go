package schedule

import (
	"context"

	"github.com/fadehouse/fadehouse-api/internal/models"
)

// ===============================
// Persistence reconciler
// ===============================

// Reconciler maps a draft week onto persisted rows: update where a row
// for (barber, day) exists, insert where it does not.
type Reconciler struct {
	repo Repository
}

func NewReconciler(repo Repository) *Reconciler {
	return &Reconciler{repo: repo}
}

// ApplyResult reports how far a reconciliation got. FailedDay is set
// when the loop aborted; writes applied before the failure stand.
type ApplyResult struct {
	Updated   int      `json:"updated"`
	Inserted  int      `json:"inserted"`
	FailedDay *Weekday `json:"failed_day,omitempty"`
}

// CreateAll is the create path: the barber is new, so all seven rows go
// in as a single batch with no existence checks.
func (r *Reconciler) CreateAll(ctx context.Context, barberID uint, w Week) error {
	return r.repo.InsertSchedules(ctx, w.Rows(barberID))
}

// Apply is the update path: a per-day upsert by (barber, day_of_week),
// executed as seven sequential read-then-write steps. The first failure
// aborts the loop; the result carries the counts applied so far.
func (r *Reconciler) Apply(ctx context.Context, barberID uint, w Week) (ApplyResult, error) {
	var res ApplyResult

	for _, day := range w {
		d := day.Weekday

		existing, err := r.repo.FindSchedule(ctx, barberID, d)
		if err != nil {
			res.FailedDay = &d
			return res, err
		}

		if existing != nil {
			existing.Working = day.Working
			existing.StartTime = day.Start.Storage()
			existing.EndTime = day.End.Storage()

			if err := r.repo.UpdateSchedule(ctx, existing); err != nil {
				res.FailedDay = &d
				return res, err
			}
			res.Updated++
			continue
		}

		row := models.BarberSchedule{
			BarberID:  barberID,
			DayOfWeek: int(d),
			Working:   day.Working,
			StartTime: day.Start.Storage(),
			EndTime:   day.End.Storage(),
		}
		if err := r.repo.InsertSchedule(ctx, &row); err != nil {
			res.FailedDay = &d
			return res, err
		}
		res.Inserted++
	}

	return res, nil
}

// UpdateExisting is the standalone manage path: every row already
// carries its own id, so each is a direct update. Rows without an id
// have no persisted counterpart and are skipped, never inserted.
func (r *Reconciler) UpdateExisting(ctx context.Context, rows []models.BarberSchedule) (int, error) {
	updated := 0
	for i := range rows {
		if rows[i].ID == 0 {
			continue
		}
		if err := r.repo.UpdateSchedule(ctx, &rows[i]); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
