package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SlavaShagalov/camp-enroll/internal/classes/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/validate"
)

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
	router.Post("/classes", gate.Auth, gate.Instructor, d.create)
	router.Get("/classes", gate.OptionalAuth, d.list)
	router.Get("/classes/:id", d.get)
	router.Patch("/classes/:id", gate.Auth, gate.Instructor, d.update)
	router.Put("/classes/:id/status", gate.Auth, gate.Admin, d.changeStatus)
	router.Patch("/classes/:id/seats", gate.Auth, d.adjustSeats)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	var dto CreateClassDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err := validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	class, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		Name:            dto.Name,
		Thumbnail:       dto.Thumbnail,
		InstructorEmail: app.CallerEmail(ctx),
		InstructorName:  dto.InstructorName,
		Price:           dto.Price,
		AvailableSeats:  dto.AvailableSeats,
		Description:     dto.Description,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(class)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email != "" {
		caller := app.CallerEmail(ctx)
		if caller == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(pkgErrors.ErrMissingAuthHeader.Map())
		}
		if caller != email {
			return pkgErrors.ErrForbidden
		}
	}

	classes, err := d.useCase.List(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(classes)
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	class, err := d.useCase.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(class)
}

func (d *Delivery) update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var dto UpdateClassDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err = validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	updated, err := d.useCase.Update(ctx.Context(), app.CallerEmail(ctx), id, usecase.UpdateParams{
		Name:           dto.Name,
		Thumbnail:      dto.Thumbnail,
		Price:          dto.Price,
		AvailableSeats: dto.AvailableSeats,
		Description:    dto.Description,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(UpdatedResponse{Updated: updated})
}

func (d *Delivery) changeStatus(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var dto ChangeStatusDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err = validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	updated, err := d.useCase.ChangeStatus(ctx.Context(), id, dto.Status)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(UpdatedResponse{Updated: updated})
}

func (d *Delivery) adjustSeats(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	updated, err := d.useCase.AdjustSeats(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(UpdatedResponse{Updated: updated})
}

func parseID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", pkgErrors.ErrInvalidRequest
	}
	return id, nil
}
