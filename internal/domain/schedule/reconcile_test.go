package schedule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schedule "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

// fakeRepo implements schedule.Repository in memory, with switchable
// failures for the reconciler's abort paths.
type fakeRepo struct {
	rows   map[schedule.Weekday]models.BarberSchedule
	nextID uint

	failFindOn   *schedule.Weekday
	failInsertOn *schedule.Weekday
	failUpdateOn *schedule.Weekday

	inserts []schedule.Weekday
	updates []schedule.Weekday
	batches [][]models.BarberSchedule
}

func newFakeRepo(days ...schedule.Weekday) *fakeRepo {
	r := &fakeRepo{rows: map[schedule.Weekday]models.BarberSchedule{}, nextID: 1}
	for _, d := range days {
		r.rows[d] = models.BarberSchedule{
			ID:        r.nextID,
			BarberID:  1,
			DayOfWeek: int(d),
			Working:   true,
			StartTime: "10:00:00",
			EndTime:   "20:00:00",
		}
		r.nextID++
	}
	return r
}

var errDown = errors.New("storage down")

func (r *fakeRepo) FindSchedule(_ context.Context, _ uint, day schedule.Weekday) (*models.BarberSchedule, error) {
	if r.failFindOn != nil && *r.failFindOn == day {
		return nil, errDown
	}
	if row, ok := r.rows[day]; ok {
		copied := row
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeRepo) InsertSchedule(_ context.Context, row *models.BarberSchedule) error {
	d := schedule.Weekday(row.DayOfWeek)
	if r.failInsertOn != nil && *r.failInsertOn == d {
		return errDown
	}
	row.ID = r.nextID
	r.nextID++
	r.rows[d] = *row
	r.inserts = append(r.inserts, d)
	return nil
}

func (r *fakeRepo) InsertSchedules(_ context.Context, rows []models.BarberSchedule) error {
	r.batches = append(r.batches, rows)
	for i := range rows {
		rows[i].ID = r.nextID
		r.nextID++
		r.rows[schedule.Weekday(rows[i].DayOfWeek)] = rows[i]
	}
	return nil
}

func (r *fakeRepo) UpdateSchedule(_ context.Context, row *models.BarberSchedule) error {
	d := schedule.Weekday(row.DayOfWeek)
	if r.failUpdateOn != nil && *r.failUpdateOn == d {
		return errDown
	}
	r.rows[d] = *row
	r.updates = append(r.updates, d)
	return nil
}

func (r *fakeRepo) ListSchedules(_ context.Context, _ uint) ([]models.BarberSchedule, error) {
	var out []models.BarberSchedule
	for d := schedule.Sunday; d <= schedule.Saturday; d++ {
		if row, ok := r.rows[d]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteSchedules(_ context.Context, _ uint) error { return nil }

func (r *fakeRepo) GetBarber(_ context.Context, _ uint) (*models.Barber, error) { return nil, nil }
func (r *fakeRepo) ListBarbers(_ context.Context) ([]models.Barber, error)      { return nil, nil }
func (r *fakeRepo) ListActiveBarbers(_ context.Context) ([]models.Barber, error) {
	return nil, nil
}
func (r *fakeRepo) CreateBarber(_ context.Context, _ *models.Barber) error { return nil }
func (r *fakeRepo) SaveBarber(_ context.Context, _ *models.Barber) error   { return nil }
func (r *fakeRepo) DeleteBarber(_ context.Context, _ uint) error           { return nil }

func TestReconcilerApply(t *testing.T) {
	t.Parallel()

	t.Run("updates existing days and inserts the rest", func(t *testing.T) {
		t.Parallel()
		// persisted rows for Sunday, Monday, Tuesday only
		repo := newFakeRepo(schedule.Sunday, schedule.Monday, schedule.Tuesday)
		rec := schedule.NewReconciler(repo)

		res, err := rec.Apply(context.Background(), 1, schedule.DefaultWeek())
		require.NoError(t, err)

		assert.Equal(t, 3, res.Updated)
		assert.Equal(t, 4, res.Inserted)
		assert.Nil(t, res.FailedDay)

		assert.Equal(t, []schedule.Weekday{schedule.Sunday, schedule.Monday, schedule.Tuesday}, repo.updates)
		assert.Equal(t, []schedule.Weekday{schedule.Wednesday, schedule.Thursday, schedule.Friday, schedule.Saturday}, repo.inserts)
	})

	t.Run("full week of existing rows issues seven updates", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo(
			schedule.Sunday, schedule.Monday, schedule.Tuesday, schedule.Wednesday,
			schedule.Thursday, schedule.Friday, schedule.Saturday,
		)
		rec := schedule.NewReconciler(repo)

		res, err := rec.Apply(context.Background(), 1, schedule.DefaultWeek())
		require.NoError(t, err)
		assert.Equal(t, 7, res.Updated)
		assert.Equal(t, 0, res.Inserted)
	})

	t.Run("write failure aborts the loop and keeps earlier writes", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo(schedule.Sunday, schedule.Monday, schedule.Tuesday)
		failOn := schedule.Thursday
		repo.failInsertOn = &failOn
		rec := schedule.NewReconciler(repo)

		res, err := rec.Apply(context.Background(), 1, schedule.DefaultWeek())
		require.ErrorIs(t, err, errDown)

		assert.Equal(t, 3, res.Updated)
		assert.Equal(t, 1, res.Inserted) // Wednesday made it in
		require.NotNil(t, res.FailedDay)
		assert.Equal(t, schedule.Thursday, *res.FailedDay)

		// nothing after the failure ran
		assert.NotContains(t, repo.inserts, schedule.Friday)
		assert.NotContains(t, repo.inserts, schedule.Saturday)
	})

	t.Run("read failure aborts before any write for that day", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		failOn := schedule.Sunday
		repo.failFindOn = &failOn
		rec := schedule.NewReconciler(repo)

		res, err := rec.Apply(context.Background(), 1, schedule.DefaultWeek())
		require.ErrorIs(t, err, errDown)
		assert.Zero(t, res.Updated)
		assert.Zero(t, res.Inserted)
	})
}

func TestReconcilerCreateAll(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	rec := schedule.NewReconciler(repo)

	err := rec.CreateAll(context.Background(), 9, schedule.DefaultWeek())
	require.NoError(t, err)

	// one batch of seven, no per-day existence checks
	require.Len(t, repo.batches, 1)
	assert.Len(t, repo.batches[0], schedule.DaysPerWeek)
	assert.Empty(t, repo.updates)
	assert.Empty(t, repo.inserts)
}

func TestReconcilerUpdateExisting(t *testing.T) {
	t.Parallel()

	t.Run("updates rows by id and skips rows without one", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo(schedule.Sunday, schedule.Monday)
		rec := schedule.NewReconciler(repo)

		rows := []models.BarberSchedule{
			{ID: 1, BarberID: 1, DayOfWeek: 0, Working: false, StartTime: "10:00:00", EndTime: "20:00:00"},
			{BarberID: 1, DayOfWeek: 4, Working: true, StartTime: "10:00:00", EndTime: "20:00:00"},
			{ID: 2, BarberID: 1, DayOfWeek: 1, Working: true, StartTime: "12:00:00", EndTime: "20:00:00"},
		}

		updated, err := rec.UpdateExisting(context.Background(), rows)
		require.NoError(t, err)
		assert.Equal(t, 2, updated)

		// the id-less Thursday row was never inserted
		_, exists := repo.rows[schedule.Thursday]
		assert.False(t, exists)
		assert.False(t, repo.rows[schedule.Sunday].Working)
		assert.Equal(t, "12:00:00", repo.rows[schedule.Monday].StartTime)
	})

	t.Run("stops at the first failing update", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo(schedule.Sunday, schedule.Monday)
		failOn := schedule.Sunday
		repo.failUpdateOn = &failOn
		rec := schedule.NewReconciler(repo)

		rows := []models.BarberSchedule{
			{ID: 1, DayOfWeek: 0},
			{ID: 2, DayOfWeek: 1},
		}

		updated, err := rec.UpdateExisting(context.Background(), rows)
		require.ErrorIs(t, err, errDown)
		assert.Zero(t, updated)
		assert.Empty(t, repo.updates)
	})
}
