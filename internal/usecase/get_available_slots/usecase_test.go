package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/schedule"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type fakeAppointments struct {
	items []*domain.Appointment
	err   error
}

func (f *fakeAppointments) ListByBarberAndDate(context.Context, uuid.UUID, time.Time) ([]*domain.Appointment, error) {
	return f.items, f.err
}

type fakeSchedule struct {
	hours   map[int]*domain.WorkingHours
	blocked []*domain.BlockedTime
}

func (f *fakeSchedule) GetWorkingHours(_ context.Context, _ uuid.UUID, day int) (*domain.WorkingHours, error) {
	wh, ok := f.hours[day]
	if !ok {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

func (f *fakeSchedule) ListBlockedTimes(context.Context, uuid.UUID, time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked, nil
}

type fakeDirectory struct {
	barbers  map[uuid.UUID]*domain.Barber
	services map[uuid.UUID]*domain.Service
}

func (f *fakeDirectory) GetBarber(_ context.Context, id uuid.UUID) (*domain.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, tenantRepo.ErrBarberNotFound
	}
	return b, nil
}

func (f *fakeDirectory) GetService(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, tenantRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeClock struct {
	today string
	now   string
}

func (c fakeClock) Today() string            { return c.today }
func (c fakeClock) CurrentTimeShort() string { return c.now }

type fixture struct {
	uc        *UseCase
	appts     *fakeAppointments
	schedule  *fakeSchedule
	actor     domain.Actor
	barberID  uuid.UUID
	serviceID uuid.UUID
	friday    time.Time
}

func newFixture(clock fakeClock) *fixture {
	tenantID := uuid.New()
	barberID := uuid.New()
	serviceID := uuid.New()
	friday := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	appts := &fakeAppointments{}
	schedule := &fakeSchedule{hours: map[int]*domain.WorkingHours{
		int(time.Friday): {IsOpen: true, StartTime: "09:00", EndTime: "11:00"},
	}}
	dir := &fakeDirectory{
		barbers:  map[uuid.UUID]*domain.Barber{barberID: {ID: barberID, TenantID: tenantID, IsActive: true}},
		services: map[uuid.UUID]*domain.Service{serviceID: {ID: serviceID, TenantID: tenantID, DurationMinutes: 60}},
	}

	return &fixture{
		uc:        NewUseCase(appts, schedule, dir, clock, logger.NewNop()),
		appts:     appts,
		schedule:  schedule,
		actor:     domain.NewActor(uuid.New(), tenantID, domain.RoleCustomer, ptr.Ptr(uuid.New()), nil),
		barberID:  barberID,
		serviceID: serviceID,
		friday:    friday,
	}
}

func TestExecute_DurationSources(t *testing.T) {
	f := newFixture(fakeClock{today: "2024-03-14", now: "10:00"})
	f.appts.items = []*domain.Appointment{
		{StartTime: types.TimeString("10:00"), ServiceDuration: 30, Status: domain.StatusConfirmed},
	}
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, resp.Slots)

	resp, err = f.uc.Execute(ctx, &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday, ServiceID: &f.serviceID})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []string{"09:00", "10:30"}, resp.Slots)

	resp, err = f.uc.Execute(ctx, &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday, DurationMinutes: ptr.Ptr(90)})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:30"}, resp.Slots)
}

func TestExecute_Today(t *testing.T) {
	f := newFixture(fakeClock{today: "2024-03-15", now: "09:30"})

	resp, err := f.uc.Execute(context.Background(), &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, resp.Slots)
}

func TestExecute_ClosedDayIsEmpty(t *testing.T) {
	f := newFixture(fakeClock{today: "2024-03-01"})
	saturday := f.friday.AddDate(0, 0, 1)

	resp, err := f.uc.Execute(context.Background(), &Request{Actor: f.actor, BarberID: f.barberID, Date: saturday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(fakeClock{today: "2024-03-01"})
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{Actor: f.actor, Date: f.friday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday, DurationMinutes: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	foreign := domain.NewActor(uuid.New(), uuid.New(), domain.RoleCustomer, nil, nil)
	_, err = f.uc.Execute(ctx, &Request{Actor: foreign, BarberID: f.barberID, Date: f.friday})
	assert.ErrorIs(t, err, ErrBarberNotFound)

	_, err = f.uc.Execute(ctx, &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday, ServiceID: ptr.Ptr(uuid.New())})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	f.appts.err = errors.New("db down")
	_, err = f.uc.Execute(ctx, &Request{Actor: f.actor, BarberID: f.barberID, Date: f.friday})
	assert.ErrorIs(t, err, ErrInternal)
}
