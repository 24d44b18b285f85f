package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
)

// trackingScheduleRepo registra si alguna consulta llegó al repositorio.
type trackingScheduleRepo struct {
	queried   bool
	schedules []*entity.Schedule
}

func (r *trackingScheduleRepo) Create(*entity.Schedule) error { return nil }
func (r *trackingScheduleRepo) GetByID(string) (*entity.Schedule, error) {
	r.queried = true
	return nil, nil
}
func (r *trackingScheduleRepo) GetForUpdate(string) (*entity.Schedule, error) {
	r.queried = true
	return nil, nil
}
func (r *trackingScheduleRepo) List() ([]*entity.Schedule, error) {
	r.queried = true
	return r.schedules, nil
}
func (r *trackingScheduleRepo) ListRecent(int) ([]*entity.Schedule, error) {
	r.queried = true
	return nil, nil
}
func (r *trackingScheduleRepo) ListByStatuses(...string) ([]*entity.Schedule, error) {
	r.queried = true
	return nil, nil
}
func (r *trackingScheduleRepo) UpdateStatus(string, string) error { return nil }
func (r *trackingScheduleRepo) CountByPort(string) (int, error)   { return 0, nil }
func (r *trackingScheduleRepo) CountByPlant(string) (int, error)  { return 0, nil }

type trackingSnapRepo struct {
	queried bool
	snaps   []*entity.StockSnapshot
}

func (r *trackingSnapRepo) Create(*entity.StockSnapshot) error { return nil }
func (r *trackingSnapRepo) ListRecent(int) ([]*entity.StockSnapshot, error) {
	r.queried = true
	return r.snaps, nil
}
func (r *trackingSnapRepo) ListAll() ([]*entity.StockSnapshot, error) {
	r.queried = true
	return r.snaps, nil
}

func strPtr(s string) *string { return &s }

// La lista de datasets es cerrada: cualquier otro identificador se rechaza
// antes de tocar el repositorio.
func TestExportDataset_IdentificadorDesconocido_RechazadoSinConsultar(t *testing.T) {
	schedRepo := &trackingScheduleRepo{}
	snapRepo := &trackingSnapRepo{}
	uc := usecase.NewExportUseCase(schedRepo, snapRepo)

	for _, name := range []string{"users", "ports", "schedules; DROP TABLE users", "", "Schedules"} {
		ds, err := uc.Dataset(name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "dataset %q debe rechazarse", name)
		assert.Nil(t, ds)
	}
	assert.False(t, schedRepo.queried, "el rechazo debe ocurrir antes de cualquier consulta")
	assert.False(t, snapRepo.queried, "el rechazo debe ocurrir antes de cualquier consulta")
}

func TestExportDataset_Schedules(t *testing.T) {
	schedRepo := &trackingScheduleRepo{schedules: []*entity.Schedule{
		{
			ID:            "s1",
			Type:          entity.ScheduleTypeVesselToPort,
			PortID:        strPtr("p1"),
			VesselID:      strPtr("v1"),
			Quantity:      5000,
			ScheduledDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			Status:        entity.ScheduleStatusScheduled,
			CreatedBy:     "system",
			CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	uc := usecase.NewExportUseCase(schedRepo, &trackingSnapRepo{})

	ds, err := uc.Dataset(usecase.DatasetSchedules)
	require.NoError(t, err)

	assert.Equal(t, usecase.DatasetSchedules, ds.Name)
	require.Len(t, ds.Rows, 1)
	require.Len(t, ds.Rows[0], len(ds.Headers), "cada fila debe alinear con los encabezados")
	assert.Equal(t, "s1", ds.Rows[0][0])
	assert.Equal(t, "5000", ds.Rows[0][7])
	assert.Equal(t, "2026-09-15", ds.Rows[0][8], "la fecha programada va como YYYY-MM-DD")
	// Referencias ausentes quedan como celda vacía, no como "<nil>"
	assert.Equal(t, "", ds.Rows[0][4])
}

func TestExportDataset_StockLevels(t *testing.T) {
	snapRepo := &trackingSnapRepo{snaps: []*entity.StockSnapshot{
		{ID: "snap1", PortID: strPtr("p1"), StockLevel: 8000, Timestamp: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)},
	}}
	uc := usecase.NewExportUseCase(&trackingScheduleRepo{}, snapRepo)

	ds, err := uc.Dataset(usecase.DatasetStockLevels)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "port_id", "plant_id", "stock_level", "timestamp"}, ds.Headers)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{"snap1", "p1", "", "8000", "2026-08-20T10:30:00Z"}, ds.Rows[0])
}
