package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"sweeply/models"
	"sweeply/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDraftRepo struct{ mock.Mock }

func (m *mockDraftRepo) Upsert(ctx context.Context, sessionToken string, patch models.DraftPatch) (*models.BookingDraft, error) {
	args := m.Called(ctx, sessionToken, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *mockDraftRepo) GetBySession(ctx context.Context, sessionToken string) (*models.BookingDraft, error) {
	args := m.Called(ctx, sessionToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *mockDraftRepo) GetByID(ctx context.Context, id string) (*models.BookingDraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *mockDraftRepo) GetByPaymentRef(ctx context.Context, reference string) (*models.BookingDraft, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *mockDraftRepo) TransitionStatus(ctx context.Context, draftID, target string) (*models.BookingDraft, error) {
	args := m.Called(ctx, draftID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *mockDraftRepo) SetPaymentRef(ctx context.Context, draftID, reference string) error {
	return m.Called(ctx, draftID, reference).Error(0)
}

func (m *mockDraftRepo) WriteAssignment(ctx context.Context, bookingID, cleanerID string, autoAssigned bool) error {
	return m.Called(ctx, bookingID, cleanerID, autoAssigned).Error(0)
}

func (m *mockDraftRepo) SweepAbandoned(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendBookingConfirmation(ctx context.Context, booking *models.BookingDraft) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockMailer) SendBookingReminder(ctx context.Context, booking *models.BookingDraft) error {
	return m.Called(ctx, booking).Error(0)
}

type mockReminders struct{ mock.Mock }

func (m *mockReminders) ScheduleReminder(bookingID, date string) error {
	return m.Called(bookingID, date).Error(0)
}

func pricedDraft(status string) *models.BookingDraft {
	return &models.BookingDraft{
		ID:            "bk-1",
		Status:        status,
		CustomerEmail: "customer@example.com",
		Date:          "2026-09-14",
		TotalPrice:    132,
	}
}

func newPaymentService(drafts *mockDraftRepo, mailer *mockMailer) (*DefaultPaymentService, *FakeGateway) {
	gateway := NewFakeGateway()
	return &DefaultPaymentService{
		Drafts:  drafts,
		Gateway: gateway,
		Mailer:  mailer,
		Logger:  zap.NewNop(),
	}, gateway
}

func TestInitiatePayment(t *testing.T) {
	drafts := new(mockDraftRepo)
	svc, _ := newPaymentService(drafts, new(mockMailer))

	drafts.On("GetByID", mock.Anything, "bk-1").Return(pricedDraft(models.StatusDraft), nil)
	drafts.On("SetPaymentRef", mock.Anything, "bk-1", mock.Anything).Return(nil)
	drafts.On("TransitionStatus", mock.Anything, "bk-1", models.StatusPendingPayment).
		Return(pricedDraft(models.StatusPendingPayment), nil)

	session, err := svc.InitiatePayment(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Reference)
	assert.NotEmpty(t, session.AuthorizationURL)
	drafts.AssertExpectations(t)
}

func TestInitiatePayment_ReinitiateWhilePending(t *testing.T) {
	// Abandoning a checkout session and starting over is allowed; the new
	// reference supersedes the old one without a status change.
	drafts := new(mockDraftRepo)
	svc, _ := newPaymentService(drafts, new(mockMailer))

	drafts.On("GetByID", mock.Anything, "bk-1").Return(pricedDraft(models.StatusPendingPayment), nil)
	drafts.On("SetPaymentRef", mock.Anything, "bk-1", mock.Anything).Return(nil)

	_, err := svc.InitiatePayment(context.Background(), "bk-1")
	require.NoError(t, err)
	drafts.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiatePayment_TerminalDraft(t *testing.T) {
	drafts := new(mockDraftRepo)
	svc, _ := newPaymentService(drafts, new(mockMailer))
	drafts.On("GetByID", mock.Anything, "bk-1").Return(pricedDraft(models.StatusCancelled), nil)

	_, err := svc.InitiatePayment(context.Background(), "bk-1")
	require.Error(t, err)
	var se *utils.StateError
	assert.ErrorAs(t, err, &se)
}

func TestInitiatePayment_UnpricedDraft(t *testing.T) {
	drafts := new(mockDraftRepo)
	svc, _ := newPaymentService(drafts, new(mockMailer))

	unpriced := pricedDraft(models.StatusDraft)
	unpriced.TotalPrice = 0
	drafts.On("GetByID", mock.Anything, "bk-1").Return(unpriced, nil)

	_, err := svc.InitiatePayment(context.Background(), "bk-1")
	require.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestVerifyPayment_Success(t *testing.T) {
	drafts := new(mockDraftRepo)
	mailer := new(mockMailer)
	reminders := new(mockReminders)
	svc, gateway := newPaymentService(drafts, mailer)
	svc.Reminders = reminders

	session, err := gateway.Initiate(context.Background(), "bk-1", 132)
	require.NoError(t, err)
	require.NoError(t, gateway.MarkPaid(session.Reference))

	pending := pricedDraft(models.StatusPendingPayment)
	pending.PaymentRef = session.Reference
	confirmed := pricedDraft(models.StatusConfirmed)
	confirmed.PaymentRef = session.Reference

	drafts.On("GetByPaymentRef", mock.Anything, session.Reference).Return(pending, nil)
	drafts.On("TransitionStatus", mock.Anything, "bk-1", models.StatusConfirmed).Return(confirmed, nil)
	mailer.On("SendBookingConfirmation", mock.Anything, confirmed).Return(nil).Once()
	reminders.On("ScheduleReminder", "bk-1", "2026-09-14").Return(nil).Once()

	resp, err := svc.VerifyPayment(context.Background(), session.Reference)
	require.NoError(t, err)
	assert.True(t, resp.Paid)
	assert.Equal(t, models.StatusConfirmed, resp.Status)
	mailer.AssertExpectations(t)
	reminders.AssertExpectations(t)
}

func TestVerifyPayment_UnpaidStaysPending(t *testing.T) {
	drafts := new(mockDraftRepo)
	mailer := new(mockMailer)
	svc, gateway := newPaymentService(drafts, mailer)

	session, err := gateway.Initiate(context.Background(), "bk-1", 132)
	require.NoError(t, err)

	pending := pricedDraft(models.StatusPendingPayment)
	pending.PaymentRef = session.Reference
	drafts.On("GetByPaymentRef", mock.Anything, session.Reference).Return(pending, nil)

	resp, err := svc.VerifyPayment(context.Background(), session.Reference)
	require.NoError(t, err)
	assert.False(t, resp.Paid)
	assert.Equal(t, models.StatusPendingPayment, resp.Status)
	drafts.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendBookingConfirmation", mock.Anything, mock.Anything)
}

func TestVerifyPayment_Idempotent(t *testing.T) {
	// A second verify of a confirmed booking answers from the stored state:
	// no gateway call, no transition, no second email.
	drafts := new(mockDraftRepo)
	mailer := new(mockMailer)
	svc, _ := newPaymentService(drafts, mailer)

	confirmed := pricedDraft(models.StatusConfirmed)
	confirmed.PaymentRef = "ref-paid"
	drafts.On("GetByPaymentRef", mock.Anything, "ref-paid").Return(confirmed, nil)

	resp, err := svc.VerifyPayment(context.Background(), "ref-paid")
	require.NoError(t, err)
	assert.True(t, resp.Paid)
	assert.Equal(t, models.StatusConfirmed, resp.Status)
	drafts.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendBookingConfirmation", mock.Anything, mock.Anything)
}

func TestVerifyPayment_UnknownReference(t *testing.T) {
	drafts := new(mockDraftRepo)
	svc, _ := newPaymentService(drafts, new(mockMailer))
	drafts.On("GetByPaymentRef", mock.Anything, "ref-missing").
		Return(nil, &utils.NotFoundError{Entity: "booking", ID: "ref-missing"})

	_, err := svc.VerifyPayment(context.Background(), "ref-missing")
	require.Error(t, err)
	var nf *utils.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestVerifyPayment_MailFailureDoesNotFailVerification(t *testing.T) {
	drafts := new(mockDraftRepo)
	mailer := new(mockMailer)
	svc, gateway := newPaymentService(drafts, mailer)

	session, err := gateway.Initiate(context.Background(), "bk-1", 132)
	require.NoError(t, err)
	require.NoError(t, gateway.MarkPaid(session.Reference))

	pending := pricedDraft(models.StatusPendingPayment)
	pending.PaymentRef = session.Reference
	confirmed := pricedDraft(models.StatusConfirmed)
	confirmed.PaymentRef = session.Reference

	drafts.On("GetByPaymentRef", mock.Anything, session.Reference).Return(pending, nil)
	drafts.On("TransitionStatus", mock.Anything, "bk-1", models.StatusConfirmed).Return(confirmed, nil)
	mailer.On("SendBookingConfirmation", mock.Anything, confirmed).
		Return(errors.New("sendgrid unavailable"))

	resp, err := svc.VerifyPayment(context.Background(), session.Reference)
	require.NoError(t, err)
	assert.True(t, resp.Paid)
}

func TestFakeGateway_Roundtrip(t *testing.T) {
	gateway := NewFakeGateway()

	session, err := gateway.Initiate(context.Background(), "bk-9", 250)
	require.NoError(t, err)

	result, err := gateway.Verify(context.Background(), session.Reference)
	require.NoError(t, err)
	assert.False(t, result.Paid)
	assert.Equal(t, "bk-9", result.BookingID)
	assert.Equal(t, 250.0, result.Amount)

	require.NoError(t, gateway.MarkPaid(session.Reference))
	result, err = gateway.Verify(context.Background(), session.Reference)
	require.NoError(t, err)
	assert.True(t, result.Paid)

	_, err = gateway.Verify(context.Background(), "ref-missing")
	assert.Error(t, err)
}
