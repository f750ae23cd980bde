package barber

import (
	"context"

	"github.com/fadehouse/fadehouse-api/internal/audit"
	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
)

// ======================================================
// USE CASE
// ======================================================

type DeleteBarber struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBarber(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBarber {
	return &DeleteBarber{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBarber) Execute(
	ctx context.Context,
	actorID uint,
	barberID uint,
) error {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return err
	}

	if err := uc.repo.DeleteSchedules(ctx, barberID); err != nil {
		return err
	}

	if err := uc.repo.DeleteBarber(ctx, barberID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barberID,
	})

	return nil
}
