package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/validate"
)

type Issuer interface {
	Issue(email string) (string, error)
}

type IssueTokenDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type Delivery struct {
	issuer Issuer
	logger *slog.Logger
}

func New(issuer Issuer, logger *slog.Logger) *Delivery {
	return &Delivery{
		issuer: issuer,
		logger: logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router, _ app.Gate) {
	router.Post("/jwt", d.issue)
}

func (d *Delivery) issue(ctx *fiber.Ctx) error {
	var dto IssueTokenDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}
	if err := validate.Struct(dto); err != nil {
		return pkgErrors.ErrInvalidRequest
	}

	token, err := d.issuer.Issue(dto.Email)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(TokenResponse{Token: token})
}
