package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/runner"

	classesUsecase "github.com/SlavaShagalov/camp-enroll/internal/classes/usecase"
	classesMocks "github.com/SlavaShagalov/camp-enroll/internal/classes/usecase/mocks"
	"github.com/SlavaShagalov/camp-enroll/internal/enrollments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/enrollments/usecase/mocks"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	paymentsUsecase "github.com/SlavaShagalov/camp-enroll/internal/payments/usecase"
	paymentsMocks "github.com/SlavaShagalov/camp-enroll/internal/payments/usecase/mocks"
	selectionsUsecase "github.com/SlavaShagalov/camp-enroll/internal/selections/usecase"
	selectionsMocks "github.com/SlavaShagalov/camp-enroll/internal/selections/usecase/mocks"
)

// The whole happy path, from class creation to the seat counter: a $50
// class turns into a 5000-cent usd intent, an enrollment record, one seat
// fewer and one enrollment more.
func TestEnrollmentFlow(t *testing.T) {
	runner.Run(t, "student enrolls into a paid class", func(pt provider.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		classesRepo := classesMocks.NewMockRepository(ctrl)
		selectionsRepo := selectionsMocks.NewMockRepository(ctrl)
		enrollmentsRepo := mocks.NewMockRepository(ctrl)
		gateway := paymentsMocks.NewMockGateway(ctrl)

		classesUC := classesUsecase.New(classesRepo, logger)
		selectionsUC := selectionsUsecase.New(selectionsRepo, logger)
		enrollmentsUC := usecase.New(enrollmentsRepo, logger)
		paymentsUC := paymentsUsecase.New(gateway, logger)

		const (
			classID    = "9f0c2d19-9729-4a9c-8f31-1de1bb9b6091"
			instructor = "teacher@camp.dev"
			student    = "student@camp.dev"
		)

		pt.WithNewStep("instructor creates a class priced at 50", func(sCtx provider.StepCtx) {
			params := classesUsecase.CreateParams{
				Name:            "Karate",
				InstructorEmail: instructor,
				Price:           50,
				AvailableSeats:  10,
			}
			classesRepo.EXPECT().Create(gomock.Any(), params).Return(models.Class{
				ID:              classID,
				Name:            "Karate",
				InstructorEmail: instructor,
				Price:           50,
				AvailableSeats:  10,
				Status:          models.ClassPending,
			}, nil)

			class, err := classesUC.Create(ctx, params)
			sCtx.Require().NoError(err)
			sCtx.Require().Equal(classID, class.ID)
		})

		pt.WithNewStep("student selects the class", func(sCtx provider.StepCtx) {
			selectionsRepo.EXPECT().Create(gomock.Any(), selectionsUsecase.CreateParams{
				StudentEmail: student,
				CourseID:     classID,
			}).Return(models.Selection{StudentEmail: student, CourseID: classID, Selected: true}, nil)

			selection, err := selectionsUC.Select(ctx, student, classID)
			sCtx.Require().NoError(err)
			sCtx.Require().True(selection.Selected)
		})

		pt.WithNewStep("payment intent carries amount 5000 in usd", func(sCtx provider.StepCtx) {
			gateway.EXPECT().CreateIntent(gomock.Any(), int64(5000), "usd").
				Return(paymentsUsecase.Intent{ID: "pi_42", ClientSecret: "pi_42_secret"}, nil)

			intent, err := paymentsUC.CreateIntent(ctx, 50)
			sCtx.Require().NoError(err)
			sCtx.Require().Equal("pi_42_secret", intent.ClientSecret)
		})

		pt.WithNewStep("enrollment is recorded", func(sCtx provider.StepCtx) {
			params := usecase.CreateParams{
				StudentEmail:    student,
				CourseID:        classID,
				ClassName:       "Karate",
				PaymentIntentID: "pi_42",
				AmountCents:     5000,
			}
			enrollmentsRepo.EXPECT().Create(gomock.Any(), params).Return(models.Enrollment{
				StudentEmail: student,
				CourseID:     classID,
			}, nil)

			enrollment, err := enrollmentsUC.Enroll(ctx, params)
			sCtx.Require().NoError(err)
			sCtx.Require().Equal(student, enrollment.StudentEmail)
		})

		pt.WithNewStep("one seat taken, one enrollment counted", func(sCtx provider.StepCtx) {
			classesRepo.EXPECT().AdjustSeats(gomock.Any(), classID).Return(int64(1), nil)

			updated, err := classesUC.AdjustSeats(ctx, classID)
			sCtx.Require().NoError(err)
			sCtx.Require().Equal(int64(1), updated)
		})
	})
}
