package check_reminders

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/timezone"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type fakeAppointments struct {
	items    []*domain.Appointment
	tenantID *uuid.UUID
	from, to time.Time
	err      error
}

func (f *fakeAppointments) ListActiveInDateRange(_ context.Context, tenantID *uuid.UUID, from, to time.Time) ([]*domain.Appointment, error) {
	f.tenantID, f.from, f.to = tenantID, from, to
	return f.items, f.err
}

type fakeNotifications struct {
	existing map[uuid.UUID]bool
}

func (f *fakeNotifications) ExistsByTypeAndRelated(_ context.Context, _ domain.NotificationType, relatedID uuid.UUID) (bool, error) {
	return f.existing[relatedID], nil
}

type fakeNotifier struct {
	sent     []notifications.Message
	outcomes map[uuid.UUID]notifications.Outcome
	errs     map[uuid.UUID]error
}

func (f *fakeNotifier) SendToCustomer(_ context.Context, customerID uuid.UUID, msg notifications.Message) (notifications.Outcome, error) {
	if err, ok := f.errs[customerID]; ok {
		return notifications.OutcomeFailed, err
	}
	if o, ok := f.outcomes[customerID]; ok {
		return o, nil
	}
	f.sent = append(f.sent, msg)
	return notifications.OutcomeSent, nil
}

// 2024-03-15 13:00 в Сан-Паулу
func testClock(t *testing.T) *timezone.Clock {
	t.Helper()
	c, err := timezone.New(timezone.DefaultLocation)
	require.NoError(t, err)
	return c.WithNow(func() time.Time {
		return time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)
	})
}

func appointmentAt(date time.Time, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Date:       date,
		StartTime:  types.TimeString(start),
		Status:     domain.StatusConfirmed,
	}
}

func TestExecute_WindowAndDedup(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	inWindow := appointmentAt(day, "14:00")
	windowStart := appointmentAt(day, "13:54")
	windowEnd := appointmentAt(day, "14:06")
	tooEarly := appointmentAt(day, "13:30")
	tooLate := appointmentAt(day, "14:30")
	alreadyReminded := appointmentAt(day, "14:00")
	noAccount := appointmentAt(day, "14:00")

	appts := &fakeAppointments{items: []*domain.Appointment{
		inWindow, windowStart, windowEnd, tooEarly, tooLate, alreadyReminded, noAccount,
	}}
	notifs := &fakeNotifications{existing: map[uuid.UUID]bool{alreadyReminded.ID: true}}
	notifier := &fakeNotifier{outcomes: map[uuid.UUID]notifications.Outcome{
		noAccount.CustomerID: notifications.OutcomeSkipped,
	}}

	uc := NewUseCase(appts, notifs, notifier, testClock(t), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, &Response{Checked: 5, Sent: 3, Skipped: 2, Failed: 0}, resp)
	assert.Nil(t, appts.tenantID)
	assert.Equal(t, "2024-03-15", appts.from.Format(domain.DateFormat))
	assert.Equal(t, "2024-03-15", appts.to.Format(domain.DateFormat))

	require.Len(t, notifier.sent, 3)
	for _, msg := range notifier.sent {
		assert.Equal(t, domain.NotificationReminder, msg.Type)
		require.NotNil(t, msg.RelatedID)
	}
	assert.Equal(t, inWindow.ID, *notifier.sent[0].RelatedID)
}

func TestExecute_RaceDuplicateCountsAsSkipped(t *testing.T) {
	appt := appointmentAt(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "14:00")
	broken := appointmentAt(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "14:00")

	notifier := &fakeNotifier{errs: map[uuid.UUID]error{
		appt.CustomerID:   fmt.Errorf("%w: %w", notifications.ErrInternal, notificationRepo.ErrDuplicate),
		broken.CustomerID: errors.New("db down"),
	}}

	uc := NewUseCase(&fakeAppointments{items: []*domain.Appointment{appt, broken}},
		&fakeNotifications{}, notifier, testClock(t), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, &Response{Checked: 2, Skipped: 1, Failed: 1}, resp)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeAppointments{err: errors.New("db down")},
		&fakeNotifications{}, &fakeNotifier{}, testClock(t), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteAsActor(t *testing.T) {
	tenantID := uuid.New()
	appts := &fakeAppointments{}
	uc := NewUseCase(appts, &fakeNotifications{}, &fakeNotifier{}, testClock(t), logger.NewNop())

	admin := domain.NewActor(uuid.New(), tenantID, domain.RoleAdmin, nil, nil)
	_, err := uc.ExecuteAsActor(context.Background(), admin)
	require.NoError(t, err)
	require.NotNil(t, appts.tenantID)
	assert.Equal(t, tenantID, *appts.tenantID)

	barber := domain.NewActor(uuid.New(), tenantID, domain.RoleBarber, nil, ptr.Ptr(uuid.New()))
	_, err = uc.ExecuteAsActor(context.Background(), barber)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.ExecuteAsActor(context.Background(), domain.NewActor(uuid.New(), uuid.Nil, domain.RoleCustomer, nil, nil))
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
