package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logitrack-api/internal/application/dto"
	appschedule "github.com/jhoicas/logitrack-api/internal/application/schedule"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
	"github.com/jhoicas/logitrack-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeScheduleRepo struct {
	byID map[string]*entity.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{byID: make(map[string]*entity.Schedule)}
}

func (r *fakeScheduleRepo) Create(s *entity.Schedule) error {
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeScheduleRepo) GetForUpdate(id string) (*entity.Schedule, error) {
	return r.GetByID(id)
}

func (r *fakeScheduleRepo) List() ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range r.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeScheduleRepo) ListRecent(limit int) ([]*entity.Schedule, error) {
	list, _ := r.List()
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeScheduleRepo) ListByStatuses(statuses ...string) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range r.byID {
		for _, st := range statuses {
			if s.Status == st {
				cp := *s
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) UpdateStatus(id, status string) error {
	r.byID[id].Status = status
	return nil
}

func (r *fakeScheduleRepo) CountByPort(portID string) (int, error) {
	n := 0
	for _, s := range r.byID {
		if s.PortID != nil && *s.PortID == portID {
			n++
		}
	}
	return n, nil
}

func (r *fakeScheduleRepo) CountByPlant(plantID string) (int, error) {
	n := 0
	for _, s := range r.byID {
		if s.PlantID != nil && *s.PlantID == plantID {
			n++
		}
	}
	return n, nil
}

type fakePortRepo struct {
	byID map[string]*entity.Port
}

func (r *fakePortRepo) Create(p *entity.Port) error              { r.byID[p.ID] = p; return nil }
func (r *fakePortRepo) GetByID(id string) (*entity.Port, error)  { return r.byID[id], nil }
func (r *fakePortRepo) GetForUpdate(id string) (*entity.Port, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakePortRepo) List() ([]*entity.Port, error) {
	var out []*entity.Port
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakePortRepo) UpdateStock(id string, stock int) error { r.byID[id].CurrentStock = stock; return nil }
func (r *fakePortRepo) Delete(id string) error                 { delete(r.byID, id); return nil }

type fakePlantRepo struct {
	byID map[string]*entity.Plant
}

func (r *fakePlantRepo) Create(p *entity.Plant) error             { r.byID[p.ID] = p; return nil }
func (r *fakePlantRepo) GetByID(id string) (*entity.Plant, error) { return r.byID[id], nil }
func (r *fakePlantRepo) GetForUpdate(id string) (*entity.Plant, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakePlantRepo) List() ([]*entity.Plant, error) {
	var out []*entity.Plant
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakePlantRepo) UpdateStock(id string, stock int) error { r.byID[id].CurrentStock = stock; return nil }
func (r *fakePlantRepo) Delete(id string) error                 { delete(r.byID, id); return nil }

type fakeSupplierRepo struct{ byID map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error             { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.byID[id], nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error)           { return nil, nil }

type fakeVesselRepo struct{ byID map[string]*entity.Vessel }

func (r *fakeVesselRepo) Create(v *entity.Vessel) error             { r.byID[v.ID] = v; return nil }
func (r *fakeVesselRepo) GetByID(id string) (*entity.Vessel, error) { return r.byID[id], nil }
func (r *fakeVesselRepo) List() ([]*entity.Vessel, error)           { return nil, nil }

type fakeRakeRepo struct{ byID map[string]*entity.Rake }

func (r *fakeRakeRepo) Create(k *entity.Rake) error             { r.byID[k.ID] = k; return nil }
func (r *fakeRakeRepo) GetByID(id string) (*entity.Rake, error) { return r.byID[id], nil }
func (r *fakeRakeRepo) List() ([]*entity.Rake, error)           { return nil, nil }

type fakeSnapRepo struct{ snaps []*entity.StockSnapshot }

func (r *fakeSnapRepo) Create(s *entity.StockSnapshot) error { r.snaps = append(r.snaps, s); return nil }
func (r *fakeSnapRepo) ListRecent(limit int) ([]*entity.StockSnapshot, error) {
	return r.snaps, nil
}
func (r *fakeSnapRepo) ListAll() ([]*entity.StockSnapshot, error) { return r.snaps, nil }

type fakeActivityRepo struct{ records []*entity.ActivityRecord }

func (r *fakeActivityRepo) Create(a *entity.ActivityRecord) error {
	r.records = append(r.records, a)
	return nil
}
func (r *fakeActivityRepo) ListRecent(limit int) ([]*entity.ActivityRecord, error) {
	return r.records, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes. Las guardas del
// caso de uso fallan antes de escribir, así que no hace falta simular rollback.
type fakeTxRunner struct {
	schedRepo repository.ScheduleRepository
	portRepo  repository.PortRepository
	plantRepo repository.PlantRepository
	snapRepo  repository.StockLevelRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ScheduleRepository,
	repository.PortRepository,
	repository.PlantRepository,
	repository.StockLevelRepository,
) error) error {
	return fn(r.schedRepo, r.portRepo, r.plantRepo, r.snapRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *appschedule.ScheduleUseCase
	sched    *fakeScheduleRepo
	ports    *fakePortRepo
	plants   *fakePlantRepo
	snaps    *fakeSnapRepo
	activity *fakeActivityRepo
}

const (
	portID   = "port-1"
	plantID  = "plant-1"
	vesselID = "vessel-1"
)

// newFixture arma un escenario con Port X (cap 10000, stock 5000) y
// Plant 1 (cap 5000, stock 2000), espejo de los datos de siembra.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	sched := newFakeScheduleRepo()
	ports := &fakePortRepo{byID: map[string]*entity.Port{
		portID: {ID: portID, Name: "Port X", Capacity: 10000, CurrentStock: 5000},
	}}
	plants := &fakePlantRepo{byID: map[string]*entity.Plant{
		plantID: {ID: plantID, Name: "Plant 1", Capacity: 5000, CurrentStock: 2000},
	}}
	vessels := &fakeVesselRepo{byID: map[string]*entity.Vessel{
		vesselID: {ID: vesselID, Name: "Default Vessel", Capacity: 5000},
	}}
	rakes := &fakeRakeRepo{byID: map[string]*entity.Rake{}}
	suppliers := &fakeSupplierRepo{byID: map[string]*entity.Supplier{}}
	snaps := &fakeSnapRepo{}
	activityRepo := &fakeActivityRepo{}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	activityUC := usecase.NewActivityUseCase(activityRepo, log)
	runner := &fakeTxRunner{schedRepo: sched, portRepo: ports, plantRepo: plants, snapRepo: snaps}

	uc := appschedule.NewScheduleUseCase(runner, sched, suppliers, ports, plants, vessels, rakes, activityUC)
	return &fixture{uc: uc, sched: sched, ports: ports, plants: plants, snaps: snaps, activity: activityRepo}
}

func strPtr(s string) *string { return &s }

// seedSchedule inserta un schedule directamente en el fake, con el estado dado.
func (f *fixture) seedSchedule(t *testing.T, typ, status string, quantity int, withPlant bool) string {
	t.Helper()
	s := &entity.Schedule{
		ID:            "sched-" + typ + "-" + status,
		Type:          typ,
		PortID:        strPtr(portID),
		Quantity:      quantity,
		ScheduledDate: time.Now(),
		Status:        status,
		CreatedBy:     "test@example.com",
		CreatedAt:     time.Now(),
	}
	if typ == entity.ScheduleTypeVesselToPort {
		s.VesselID = strPtr(vesselID)
	}
	if withPlant {
		s.PlantID = strPtr(plantID)
	}
	require.NoError(t, f.sched.Create(s))
	return s.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_VesselToPort_QuedaScheduled(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(dto.CreateScheduleRequest{
		Type:          entity.ScheduleTypeVesselToPort,
		PortID:        strPtr(portID),
		VesselID:      strPtr(vesselID),
		Quantity:      3000,
		ScheduledDate: "2026-09-15",
	}, "manager@example.com")
	require.NoError(t, err)

	assert.Equal(t, entity.ScheduleStatusScheduled, out.Status,
		"todo schedule nuevo nace en scheduled")
	assert.Equal(t, 3000, out.Quantity)
	assert.NotEmpty(t, out.ID)

	// El stock no se toca al crear, solo al completar
	assert.Equal(t, 5000, f.ports.byID[portID].CurrentStock)

	// La creación queda en la bitácora
	require.Len(t, f.activity.records, 1)
	assert.Equal(t, entity.ActivityCreateSchedule, f.activity.records[0].Action)
}

func TestCreate_FechaPasada_Permitida(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateScheduleRequest{
		Type:          entity.ScheduleTypeVesselToPort,
		PortID:        strPtr(portID),
		VesselID:      strPtr(vesselID),
		Quantity:      100,
		ScheduledDate: "2020-01-01",
	}, "manager@example.com")
	assert.NoError(t, err, "las fechas pasadas se admiten (carga retroactiva)")
}

func TestCreate_VesselToPortSinVessel_Rechazado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateScheduleRequest{
		Type:          entity.ScheduleTypeVesselToPort,
		PortID:        strPtr(portID),
		Quantity:      100,
		ScheduledDate: "2026-09-15",
	}, "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadNoPositiva_Rechazada(t *testing.T) {
	f := newFixture(t)

	for _, qty := range []int{0, -5} {
		_, err := f.uc.Create(dto.CreateScheduleRequest{
			Type:          entity.ScheduleTypeVesselToPort,
			PortID:        strPtr(portID),
			VesselID:      strPtr(vesselID),
			Quantity:      qty,
			ScheduledDate: "2026-09-15",
		}, "manager@example.com")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_PuertoInexistente_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateScheduleRequest{
		Type:          entity.ScheduleTypeVesselToPort,
		PortID:        strPtr("no-existe"),
		VesselID:      strPtr(vesselID),
		Quantity:      100,
		ScheduledDate: "2026-09-15",
	}, "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de transición y mutación de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_CompletarVesselToPort_SumaStockExacto(t *testing.T) {
	f := newFixture(t)
	id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, entity.ScheduleStatusScheduled, 3000, false)

	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "manager@example.com")
	require.NoError(t, err)

	assert.Equal(t, 8000, f.ports.byID[portID].CurrentStock, "5000 + 3000")
	assert.Equal(t, entity.ScheduleStatusCompleted, f.sched.byID[id].Status)

	// Foto de stock tomada dentro de la misma transacción
	require.Len(t, f.snaps.snaps, 1)
	assert.Equal(t, 8000, f.snaps.snaps[0].StockLevel)
	require.NotNil(t, f.snaps.snaps[0].PortID)
	assert.Equal(t, portID, *f.snaps.snaps[0].PortID)
}

func TestTransition_CompletarPortToPlant_ConservaStock(t *testing.T) {
	f := newFixture(t)
	id := f.seedSchedule(t, entity.ScheduleTypePortToPlant, entity.ScheduleStatusInProgress, 2000, true)

	totalAntes := f.ports.byID[portID].CurrentStock + f.plants.byID[plantID].CurrentStock

	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "manager@example.com")
	require.NoError(t, err)

	assert.Equal(t, 3000, f.ports.byID[portID].CurrentStock, "5000 - 2000")
	assert.Equal(t, 4000, f.plants.byID[plantID].CurrentStock, "2000 + 2000")

	totalDespues := f.ports.byID[portID].CurrentStock + f.plants.byID[plantID].CurrentStock
	assert.Equal(t, totalAntes, totalDespues, "el traslado conserva el total")

	assert.Len(t, f.snaps.snaps, 2, "una foto por cada ubicación mutada")
}

func TestTransition_CapacidadExcedida_RechazaSinMutar(t *testing.T) {
	f := newFixture(t)
	// 5000 + 6000 > capacidad 10000
	id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, entity.ScheduleStatusScheduled, 6000, false)

	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	// Se rechaza, no se recorta: el stock y el estado quedan intactos
	assert.Equal(t, 5000, f.ports.byID[portID].CurrentStock)
	assert.Equal(t, entity.ScheduleStatusScheduled, f.sched.byID[id].Status)
	assert.Empty(t, f.snaps.snaps)
}

func TestTransition_StockInsuficiente_RechazaSinMutar(t *testing.T) {
	f := newFixture(t)
	// 5000 - 7000 < 0
	id := f.seedSchedule(t, entity.ScheduleTypePortToPlant, entity.ScheduleStatusScheduled, 7000, true)

	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5000, f.ports.byID[portID].CurrentStock)
	assert.Equal(t, 2000, f.plants.byID[plantID].CurrentStock)
	assert.Equal(t, entity.ScheduleStatusScheduled, f.sched.byID[id].Status)
}

func TestTransition_CapacidadPlantaExcedida_NoMutaPuerto(t *testing.T) {
	f := newFixture(t)
	// 2000 + 4000 > capacidad de planta 5000; la guarda de la planta debe
	// impedir también la resta en el puerto
	id := f.seedSchedule(t, entity.ScheduleTypePortToPlant, entity.ScheduleStatusScheduled, 4000, true)

	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	assert.Equal(t, 5000, f.ports.byID[portID].CurrentStock, "el puerto no debe perder stock")
	assert.Equal(t, 2000, f.plants.byID[plantID].CurrentStock)
}

func TestTransition_EstadoTerminal_Inmutable(t *testing.T) {
	f := newFixture(t)

	for _, terminal := range []string{entity.ScheduleStatusCompleted, entity.ScheduleStatusCanceled} {
		id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, terminal, 1000, false)
		err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusInProgress, "manager@example.com")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition,
			"un schedule en %s no admite más transiciones", terminal)
	}
	// Ningún intento debe haber tocado el stock
	assert.Equal(t, 5000, f.ports.byID[portID].CurrentStock)
}

func TestTransition_DobleCompletado_AplicaDeltaUnaVez(t *testing.T) {
	f := newFixture(t)
	id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, entity.ScheduleStatusScheduled, 3000, false)

	// Primer completado aplica el delta
	require.NoError(t, f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "a@example.com"))
	// El segundo relee el estado terminal y falla sin volver a sumar
	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "b@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.Equal(t, 8000, f.ports.byID[portID].CurrentStock, "el delta se aplica exactamente una vez")
	assert.Len(t, f.snaps.snaps, 1)
}

func TestTransition_EstadoDesconocido_Rechazado(t *testing.T) {
	f := newFixture(t)
	id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, entity.ScheduleStatusScheduled, 1000, false)

	err := f.uc.Transition(context.Background(), id, "finished", "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, entity.ScheduleStatusScheduled, f.sched.byID[id].Status)
}

func TestTransition_ScheduleInexistente_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.uc.Transition(context.Background(), "no-existe", entity.ScheduleStatusCompleted, "manager@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransition_ADelayed_NoTocaStock(t *testing.T) {
	f := newFixture(t)
	id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, entity.ScheduleStatusInProgress, 3000, false)

	err := f.uc.Transition(context.Background(), id, entity.ScheduleStatusDelayed, "manager@example.com")
	require.NoError(t, err)

	assert.Equal(t, entity.ScheduleStatusDelayed, f.sched.byID[id].Status)
	assert.Equal(t, 5000, f.ports.byID[portID].CurrentStock, "solo completar muta stock")
	assert.Empty(t, f.snaps.snaps)
}

func TestTransition_RegistraActividad(t *testing.T) {
	f := newFixture(t)
	id := f.seedSchedule(t, entity.ScheduleTypeVesselToPort, entity.ScheduleStatusScheduled, 1000, false)

	require.NoError(t, f.uc.Transition(context.Background(), id, entity.ScheduleStatusCompleted, "manager@example.com"))

	require.Len(t, f.activity.records, 1)
	rec := f.activity.records[0]
	assert.Equal(t, "manager@example.com", rec.UserEmail)
	assert.Equal(t, entity.ActivityUpdateStatus, rec.Action)
	assert.Contains(t, rec.Details, id)
}
