package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/validate"
)

type SelectClassDTO struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
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
	router.Post("/selected-classes", gate.Auth, d.selectClass)
	router.Get("/selected-classes", gate.Auth, d.list)
	router.Get("/selected-classes/:id", gate.Auth, d.get)
	router.Delete("/selected-classes/:id", gate.Auth, d.delete)
}

func (d *Delivery) selectClass(ctx *fiber.Ctx) error {
	var dto SelectClassDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err := validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	selection, err := d.useCase.Select(ctx.Context(), app.CallerEmail(ctx), dto.CourseID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(selection)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		email = app.CallerEmail(ctx)
	}
	if email != app.CallerEmail(ctx) {
		return pkgErrors.ErrForbidden
	}

	selections, err := d.useCase.List(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(selections)
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	selection, err := d.useCase.Get(ctx.Context(), app.CallerEmail(ctx), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(selection)
}

func (d *Delivery) delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	deleted, err := d.useCase.Delete(ctx.Context(), app.CallerEmail(ctx), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(DeletedResponse{Deleted: deleted})
}

func parseID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", pkgErrors.ErrInvalidRequest
	}
	return id, nil
}
