package barber

import (
	"context"

	"github.com/fadehouse/fadehouse-api/internal/audit"
	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type UpdateBarberInput struct {
	ActorID  uint
	BarberID uint

	Name   *string
	Title  *string
	Active *bool

	// Week is optional; nil means core fields only.
	Week *domain.Week
}

type UpdateBarberOutput struct {
	Barber *models.Barber
	Result domain.ApplyResult

	// ScheduleErr is non-fatal: the barber's own fields were already
	// committed when the per-day reconciliation failed. Already-applied
	// day writes are not rolled back; the caller retries by reopening
	// the editor.
	ScheduleErr error
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBarber struct {
	repo       domain.Repository
	reconciler *domain.Reconciler
	audit      *audit.Dispatcher
}

func NewUpdateBarber(
	repo domain.Repository,
	reconciler *domain.Reconciler,
	audit *audit.Dispatcher,
) *UpdateBarber {
	return &UpdateBarber{
		repo:       repo,
		reconciler: reconciler,
		audit:      audit,
	}
}

func (uc *UpdateBarber) Execute(
	ctx context.Context,
	in UpdateBarberInput,
) (*UpdateBarberOutput, error) {

	if in.Week != nil {
		if err := in.Week.Validate(); err != nil {
			return nil, err
		}
	}

	b, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Active != nil {
		b.Active = *in.Active
	}

	// A core-field failure aborts the whole save.
	if err := uc.repo.SaveBarber(ctx, b); err != nil {
		return nil, err
	}

	out := &UpdateBarberOutput{Barber: b}

	if in.Week != nil {
		res, err := uc.reconciler.Apply(ctx, b.ID, *in.Week)
		out.Result = res
		out.ScheduleErr = err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &b.ID,
		Metadata: out.Result,
	})

	return out, nil
}
