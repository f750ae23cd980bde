package schedule

import (
	"context"

	"github.com/fadehouse/fadehouse-api/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	CreateBarber(
		ctx context.Context,
		b *models.Barber,
	) error

	SaveBarber(
		ctx context.Context,
		b *models.Barber,
	) error

	DeleteBarber(
		ctx context.Context,
		id uint,
	) error

	// -------- Schedule rows --------
	ListSchedules(
		ctx context.Context,
		barberID uint,
	) ([]models.BarberSchedule, error)

	// FindSchedule returns (nil, nil) when no row exists for the day.
	FindSchedule(
		ctx context.Context,
		barberID uint,
		day Weekday,
	) (*models.BarberSchedule, error)

	InsertSchedule(
		ctx context.Context,
		row *models.BarberSchedule,
	) error

	InsertSchedules(
		ctx context.Context,
		rows []models.BarberSchedule,
	) error

	UpdateSchedule(
		ctx context.Context,
		row *models.BarberSchedule,
	) error

	DeleteSchedules(
		ctx context.Context,
		barberID uint,
	) error
}
