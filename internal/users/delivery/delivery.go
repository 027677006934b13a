package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/validate"
	"github.com/SlavaShagalov/camp-enroll/internal/users/usecase"
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
	router.Post("/users", d.create)
	router.Get("/users", gate.Auth, gate.Admin, d.list)
	router.Put("/users/:id/role", gate.Auth, gate.Admin, d.changeRole)
	router.Delete("/users/:id", gate.Auth, gate.Admin, d.delete)
	router.Get("/users/admin/:email", gate.Auth, d.checkAdmin)
	router.Get("/users/instructor/:email", gate.Auth, d.checkInstructor)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	var dto CreateUserDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err := validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	user, existed, err := d.useCase.Create(ctx.Context(), usecase.CreateParams{
		Email:    dto.Email,
		Name:     dto.Name,
		PhotoURL: dto.PhotoURL,
	})
	if err != nil {
		return err
	}

	if existed {
		return ctx.Status(fiber.StatusOK).JSON(UserExistsResponse{
			Message: "user already exists",
			User:    user,
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(user)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	users, err := d.useCase.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(users)
}

func (d *Delivery) changeRole(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var dto ChangeRoleDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRole
	}
	if err = validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRole
	}

	updated, err := d.useCase.ChangeRole(ctx.Context(), id, dto.Role)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(UpdatedResponse{Updated: updated})
}

func (d *Delivery) delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	deleted, err := d.useCase.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(DeletedResponse{Deleted: deleted})
}

func (d *Delivery) checkAdmin(ctx *fiber.Ctx) error {
	return d.checkRole(ctx, models.RoleAdmin, "admin")
}

func (d *Delivery) checkInstructor(ctx *fiber.Ctx) error {
	return d.checkRole(ctx, models.RoleInstructor, "instructor")
}

func (d *Delivery) checkRole(ctx *fiber.Ctx, role models.Role, field string) error {
	email := ctx.Params("email")

	has, err := d.useCase.HasRole(ctx.Context(), app.CallerEmail(ctx), email, role)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(RoleCheckResponse{field: has})
}

func parseID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", pkgErrors.ErrInvalidRequest
	}
	return id, nil
}
