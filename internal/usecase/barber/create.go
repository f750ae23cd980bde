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

type CreateBarberInput struct {
	ActorID uint

	Name  string
	Title string

	Week domain.Week
}

type CreateBarberOutput struct {
	Barber *models.Barber

	// ScheduleErr is non-fatal: the barber row is already committed
	// when the schedule batch insert fails.
	ScheduleErr error
}

// ======================================================
// USE CASE
// ======================================================

type CreateBarber struct {
	repo       domain.Repository
	reconciler *domain.Reconciler
	audit      *audit.Dispatcher
}

func NewCreateBarber(
	repo domain.Repository,
	reconciler *domain.Reconciler,
	audit *audit.Dispatcher,
) *CreateBarber {
	return &CreateBarber{
		repo:       repo,
		reconciler: reconciler,
		audit:      audit,
	}
}

func (uc *CreateBarber) Execute(
	ctx context.Context,
	in CreateBarberInput,
) (*CreateBarberOutput, error) {

	// Validation gates everything: an invalid draft never reaches
	// the persistence layer.
	if err := in.Week.Validate(); err != nil {
		return nil, err
	}

	b := &models.Barber{
		Name:   in.Name,
		Title:  in.Title,
		Active: true,
	}
	if err := uc.repo.CreateBarber(ctx, b); err != nil {
		return nil, err
	}

	out := &CreateBarberOutput{Barber: b}

	// Create path: the barber has no prior rows, so all seven go in
	// as one batch.
	if err := uc.reconciler.CreateAll(ctx, b.ID, in.Week); err != nil {
		out.ScheduleErr = err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &b.ID,
	})

	return out, nil
}
