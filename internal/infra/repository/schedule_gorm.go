package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *ScheduleGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *ScheduleGormRepository) CreateBarber(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) SaveBarber(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *ScheduleGormRepository) DeleteBarber(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Barber{}, id).Error
}

// --------------------------------------------------
// Schedule rows
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSchedules(
	ctx context.Context,
	barberID uint,
) ([]models.BarberSchedule, error) {

	var rows []models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) FindSchedule(
	ctx context.Context,
	barberID uint,
	day domain.Weekday,
) (*models.BarberSchedule, error) {

	var row models.BarberSchedule
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, int(day)).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ScheduleGormRepository) InsertSchedule(
	ctx context.Context,
	row *models.BarberSchedule,
) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *ScheduleGormRepository) InsertSchedules(
	ctx context.Context,
	rows []models.BarberSchedule,
) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ScheduleGormRepository) UpdateSchedule(
	ctx context.Context,
	row *models.BarberSchedule,
) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *ScheduleGormRepository) DeleteSchedules(
	ctx context.Context,
	barberID uint,
) error {
	return r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Delete(&models.BarberSchedule{}).Error
}
