package controllers

import (
	"strings"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	apimodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/api"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

// GetID returns a copy of the "id" route param that stays valid after the
// request is released.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(utils.CopyString(ctx.Params("id")))
	if id == "" {
		return "", errors.New("id is required")
	}
	return id, nil
}

// SendError writes err with the HTTP status of its kind.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	kind := models.KindOf(err)
	status := StatusOf(kind)
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(status).JSON(apimodels.NewErrorWithKind(kind, models.PublicMessage(err)))
}

func StatusOf(kind models.ErrorKind) int {
	switch kind {
	case models.ValidationError:
		return fiber.StatusBadRequest
	case models.ConflictError:
		return fiber.StatusConflict
	case models.NotFoundError:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
