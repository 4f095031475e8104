package booking

import (
	"context"
	"testing"

	cleanerRepo "sweeply/database/repository/cleaner"
	"sweeply/models"
	"sweeply/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scheduledBooking() *models.BookingDraft {
	return &models.BookingDraft{
		ID:        "bk-1",
		Status:    models.StatusDraft,
		ServiceID: "svc-standard",
		SuburbID:  "sub-1",
		Date:      "2026-09-14",
		StartTime: "10:00",
	}
}

func TestAssignCleaner_NeitherModeRejected(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{BookingID: "bk-1"})
	require.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAssignCleaner_BothModesRejected(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{
		BookingID: "bk-1", CleanerID: "cl-1", AutoAssign: true,
	})
	require.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAssignCleaner_Explicit(t *testing.T) {
	svc, drafts, cleaners, _ := newTestService()

	drafts.On("GetByID", mock.Anything, "bk-1").Return(scheduledBooking(), nil)
	cleaners.On("GetByID", mock.Anything, "cl-7").Return(&models.Cleaner{ID: "cl-7", Active: true}, nil)
	drafts.On("WriteAssignment", mock.Anything, "bk-1", "cl-7", false).Return(nil)

	result, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{
		BookingID: "bk-1", CleanerID: "cl-7",
	})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.True(t, result.Applied)
	assert.Equal(t, "cl-7", result.CleanerID)
	drafts.AssertExpectations(t)
}

func TestAssignCleaner_ExplicitUnknownCleaner(t *testing.T) {
	svc, drafts, cleaners, _ := newTestService()

	drafts.On("GetByID", mock.Anything, "bk-1").Return(scheduledBooking(), nil)
	cleaners.On("GetByID", mock.Anything, "cl-missing").
		Return(nil, &utils.NotFoundError{Entity: "cleaner", ID: "cl-missing"})

	_, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{
		BookingID: "bk-1", CleanerID: "cl-missing",
	})
	require.Error(t, err)
	var nf *utils.NotFoundError
	assert.ErrorAs(t, err, &nf)
	drafts.AssertNotCalled(t, "WriteAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignCleaner_AutoPicksTopRated(t *testing.T) {
	svc, drafts, cleaners, _ := newTestService()

	drafts.On("GetByID", mock.Anything, "bk-1").Return(scheduledBooking(), nil)
	cleaners.On("FindAvailable", mock.Anything, mock.MatchedBy(func(q cleanerRepo.AvailabilityQuery) bool {
		// 10:00 start, three-hour window.
		return q.SuburbID == "sub-1" && q.ServiceID == "svc-standard" &&
			q.StartMinute == 600 && q.EndMinute == 780
	})).Return([]models.Cleaner{
		{ID: "cl-best", Rating: 4.9},
		{ID: "cl-second", Rating: 4.5},
	}, nil)
	drafts.On("WriteAssignment", mock.Anything, "bk-1", "cl-best", true).Return(nil)

	result, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{
		BookingID: "bk-1", AutoAssign: true,
	})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, "cl-best", result.CleanerID)
	drafts.AssertExpectations(t)
}

func TestAssignCleaner_AutoNoCandidatesIsSoftFailure(t *testing.T) {
	svc, drafts, cleaners, _ := newTestService()

	drafts.On("GetByID", mock.Anything, "bk-1").Return(scheduledBooking(), nil)
	cleaners.On("FindAvailable", mock.Anything, mock.Anything).Return([]models.Cleaner{}, nil)

	result, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{
		BookingID: "bk-1", AutoAssign: true,
	})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.False(t, result.Applied)
	assert.Empty(t, result.CleanerID)
	drafts.AssertNotCalled(t, "WriteAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignCleaner_AutoNeedsSchedule(t *testing.T) {
	svc, drafts, _, _ := newTestService()

	unscheduled := scheduledBooking()
	unscheduled.Date = ""
	drafts.On("GetByID", mock.Anything, "bk-1").Return(unscheduled, nil)

	_, err := svc.AssignCleaner(context.Background(), models.AssignmentRequest{
		BookingID: "bk-1", AutoAssign: true,
	})
	require.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}
