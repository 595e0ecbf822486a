package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type fakeAppointments struct {
	existing  []*domain.Appointment
	created   []*domain.Appointment
	createErr error
}

func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = uuid.New()
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeAppointments) ListByBarberAndDate(context.Context, uuid.UUID, time.Time) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeSchedule struct {
	blocked []*domain.BlockedTime
}

func (f *fakeSchedule) ListBlockedTimes(context.Context, uuid.UUID, time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked, nil
}

type fakeDirectory struct {
	barbers   map[uuid.UUID]*domain.Barber
	services  map[uuid.UUID]*domain.Service
	customers map[uuid.UUID]*domain.Customer
}

func (f *fakeDirectory) GetBarber(_ context.Context, id uuid.UUID) (*domain.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, tenantRepo.ErrBarberNotFound
}

func (f *fakeDirectory) GetService(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, tenantRepo.ErrServiceNotFound
}

func (f *fakeDirectory) GetCustomer(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, tenantRepo.ErrCustomerNotFound
}

type fakeNotifier struct {
	calls []notifications.Message
	err   error
}

func (f *fakeNotifier) NotifyStaff(_ context.Context, _ uuid.UUID, msg notifications.Message) (*notifications.FanOutResult, error) {
	f.calls = append(f.calls, msg)
	if f.err != nil {
		return nil, f.err
	}
	return &notifications.FanOutResult{Recipients: 2, Sent: 2}, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeClock struct {
	today string
	now   string
}

func (c fakeClock) Today() string            { return c.today }
func (c fakeClock) CurrentTimeShort() string { return c.now }

type fixture struct {
	uc         *UseCase
	appts      *fakeAppointments
	schedule   *fakeSchedule
	notifier   *fakeNotifier
	tx         *fakeTxManager
	tenantID   uuid.UUID
	customerID uuid.UUID
	barberID   uuid.UUID
	serviceID  uuid.UUID
	customer   domain.Actor
	date       time.Time
}

func newFixture() *fixture {
	tenantID := uuid.New()
	customerID := uuid.New()
	barberID := uuid.New()
	serviceID := uuid.New()

	appts := &fakeAppointments{}
	schedule := &fakeSchedule{}
	notifier := &fakeNotifier{}
	tx := &fakeTxManager{}
	dir := &fakeDirectory{
		barbers:   map[uuid.UUID]*domain.Barber{barberID: {ID: barberID, TenantID: tenantID, Name: "João", IsActive: true}},
		services:  map[uuid.UUID]*domain.Service{serviceID: {ID: serviceID, TenantID: tenantID, DurationMinutes: 45, IsActive: true}},
		customers: map[uuid.UUID]*domain.Customer{customerID: {ID: customerID, TenantID: tenantID}},
	}

	uc := NewUseCase(appts, schedule, dir, notifier, tx,
		fakeClock{today: "2024-03-14", now: "15:00"}, (*metrics.Metrics)(nil), logger.NewNop())

	return &fixture{
		uc:         uc,
		appts:      appts,
		schedule:   schedule,
		notifier:   notifier,
		tx:         tx,
		tenantID:   tenantID,
		customerID: customerID,
		barberID:   barberID,
		serviceID:  serviceID,
		customer:   domain.NewActor(uuid.New(), tenantID, domain.RoleCustomer, ptr.Ptr(customerID), nil),
		date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) request(start string) *Request {
	return &Request{
		Actor:     f.customer,
		BarberID:  f.barberID,
		ServiceID: f.serviceID,
		Date:      f.date,
		StartTime: types.TimeString(start),
	}
}

func TestExecute_CreatesPendingAndNotifiesStaff(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.request("10:00"))
	require.NoError(t, err)

	appt := resp.Appointment
	assert.Equal(t, domain.StatusPending, appt.Status)
	assert.Equal(t, f.customerID, appt.CustomerID)
	assert.Equal(t, f.tenantID, appt.TenantID)
	assert.Equal(t, 45, appt.ServiceDuration)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 2, resp.Notified)

	require.Len(t, f.notifier.calls, 1)
	msg := f.notifier.calls[0]
	assert.Equal(t, domain.NotificationBooking, msg.Type)
	require.NotNil(t, msg.RelatedID)
	assert.Equal(t, appt.ID, *msg.RelatedID)
	assert.Contains(t, msg.Message, "15/03/2024")
}

func TestExecute_NotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("no staff")

	resp, err := f.uc.Execute(context.Background(), f.request("10:00"))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Notified)
	assert.Len(t, f.appts.created, 1)
}

func TestExecute_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		existing []*domain.Appointment
		blocked  []*domain.BlockedTime
		start    string
		wantErr  error
	}{
		{
			name:     "overlaps existing appointment",
			existing: []*domain.Appointment{{ID: uuid.New(), StartTime: "10:30", ServiceDuration: 30, Status: domain.StatusConfirmed}},
			start:    "10:00",
			wantErr:  ErrSlotNotAvailable,
		},
		{
			name:     "touching appointment is fine",
			existing: []*domain.Appointment{{ID: uuid.New(), StartTime: "10:45", ServiceDuration: 30, Status: domain.StatusPending}},
			start:    "10:00",
		},
		{
			name:     "cancelled appointment is ignored",
			existing: []*domain.Appointment{{ID: uuid.New(), StartTime: "10:00", ServiceDuration: 30, Status: domain.StatusCancelled}},
			start:    "10:00",
		},
		{
			name:    "blocked window",
			blocked: []*domain.BlockedTime{{StartTime: "10:40", EndTime: "11:00"}},
			start:   "10:00",
			wantErr: ErrSlotNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.appts.existing = tt.existing
			f.schedule.blocked = tt.blocked

			_, err := f.uc.Execute(context.Background(), f.request(tt.start))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.appts.created)
				assert.Empty(t, f.notifier.calls)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_ConcurrentInsertMapsToConflict(t *testing.T) {
	f := newFixture()
	f.appts.createErr = appointmentRepo.ErrSlotNotAvailable

	_, err := f.uc.Execute(context.Background(), f.request("10:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_Rejections(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	noTenant := domain.NewActor(uuid.New(), uuid.Nil, domain.RoleCustomer, ptr.Ptr(f.customerID), nil)
	req := f.request("10:00")
	req.Actor = noTenant
	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrTenantNotFound)

	req = f.request("10:00")
	req.CustomerID = ptr.Ptr(uuid.New())
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	req = f.request("10:00")
	req.Date = time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = f.request("15:00")
	req.Date = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = f.request("10:00")
	req.BarberID = uuid.New()
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrBarberNotFound)

	req = f.request("25:00")
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	admin := domain.NewActor(uuid.New(), f.tenantID, domain.RoleAdmin, nil, nil)
	req = f.request("10:00")
	req.Actor = admin
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.CustomerID = ptr.Ptr(f.customerID)
	resp, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, f.customerID, resp.Appointment.CustomerID)
}
