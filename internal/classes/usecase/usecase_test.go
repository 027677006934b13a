package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/camp-enroll/internal/classes/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/classes/usecase/mocks"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

const classID = "9f0c2d19-9729-4a9c-8f31-1de1bb9b6091"

func newUseCase(t *testing.T) (*usecase.UseCase, *mocks.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return usecase.New(repo, logger), repo
}

func TestListWithoutFilter(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().ListApproved(gomock.Any()).Return([]models.Class{{ID: classID}}, nil)

	classes, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, classes, 1)
}

func TestListWithFilter(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().ListByInstructor(gomock.Any(), "teacher@camp.dev").Return([]models.Class{}, nil)

	_, err := uc.List(context.Background(), "teacher@camp.dev")
	require.NoError(t, err)
}

func TestUpdateByForeignInstructor(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().Get(gomock.Any(), classID).
		Return(models.Class{ID: classID, InstructorEmail: "owner@camp.dev"}, nil)

	_, err := uc.Update(context.Background(), "imposter@camp.dev", classID, usecase.UpdateParams{})
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)
}

func TestUpdateByOwner(t *testing.T) {
	uc, repo := newUseCase(t)
	params := usecase.UpdateParams{Name: "Karate", Price: 50, AvailableSeats: 10}

	repo.EXPECT().Get(gomock.Any(), classID).
		Return(models.Class{ID: classID, InstructorEmail: "owner@camp.dev"}, nil)
	repo.EXPECT().Update(gomock.Any(), classID, params).Return(int64(1), nil)

	updated, err := uc.Update(context.Background(), "owner@camp.dev", classID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestChangeStatusInvalid(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.ChangeStatus(context.Background(), classID, "archived")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidRequest)
}

func TestChangeStatusMissingClass(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().UpdateStatus(gomock.Any(), classID, models.ClassApproved).Return(int64(0), nil)

	_, err := uc.ChangeStatus(context.Background(), classID, models.ClassApproved)
	assert.ErrorIs(t, err, pkgErrors.ErrClassNotFound)
}

func TestChangeStatus(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().UpdateStatus(gomock.Any(), classID, models.ClassDenied).Return(int64(1), nil)

	updated, err := uc.ChangeStatus(context.Background(), classID, models.ClassDenied)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestAdjustSeats(t *testing.T) {
	uc, repo := newUseCase(t)

	repo.EXPECT().AdjustSeats(gomock.Any(), classID).Return(int64(1), nil)

	updated, err := uc.AdjustSeats(context.Background(), classID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}
