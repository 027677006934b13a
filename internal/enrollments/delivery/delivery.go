package delivery

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/camp-enroll/internal/enrollments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/validate"
	"github.com/SlavaShagalov/camp-enroll/pkg/export"
)

type EnrollDTO struct {
	CourseID        string `json:"courseId" validate:"required,uuid"`
	ClassName       string `json:"className"`
	PaymentIntentID string `json:"paymentIntentId"`
	AmountCents     int64  `json:"amountCents" validate:"gte=0"`
}

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router, gate app.Gate) {
	router.Post("/enroll", gate.Auth, d.enroll)
	router.Get("/enroll", gate.Auth, d.listByEmail)
	router.Get("/enrolled", gate.Auth, gate.Admin, d.list)
	router.Get("/enrolled/export", gate.Auth, gate.Admin, d.export)
}

func (d *Delivery) enroll(ctx *fiber.Ctx) error {
	var dto EnrollDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err := validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	enrollment, err := d.useCase.Enroll(ctx.Context(), usecase.CreateParams{
		StudentEmail:    app.CallerEmail(ctx),
		CourseID:        dto.CourseID,
		ClassName:       dto.ClassName,
		PaymentIntentID: dto.PaymentIntentID,
		AmountCents:     dto.AmountCents,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(enrollment)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	enrollments, err := d.useCase.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(enrollments)
}

func (d *Delivery) listByEmail(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		email = app.CallerEmail(ctx)
	}
	if email != app.CallerEmail(ctx) {
		return pkgErrors.ErrForbidden
	}

	enrollments, err := d.useCase.ListByEmail(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(enrollments)
}

// export renders the full enrollment ledger as an xlsx report.
func (d *Delivery) export(ctx *fiber.Ctx) error {
	enrollments, err := d.useCase.List(ctx.Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, []string{
			e.StudentEmail,
			e.ClassName,
			e.CourseID,
			e.PaymentIntentID,
			fmt.Sprintf("%.2f", float64(e.AmountCents)/100),
			e.CreatedAt.Format(time.RFC3339),
		})
	}

	buf, err := export.Workbook([]export.Sheet{{
		Title:  "Enrollments",
		Header: []string{"Student", "Class", "Course ID", "Payment Intent", "Amount USD", "Enrolled At"},
		Rows:   rows,
	}})
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("enrollments_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	return ctx.Send(buf.Bytes())
}
