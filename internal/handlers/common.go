// common.go
//
// Campus amenity ratings and discovery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of amenitydb.
// amenitydb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// amenitydb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with amenitydb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/amenitydb/internal/services"
	"github.com/localnerve/amenitydb/internal/types"
	"github.com/localnerve/amenitydb/internal/utils"
	"github.com/rs/zerolog/log"
)

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseID reads a positive integer path parameter
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, types.NewBadRequest("validation.params", "Invalid %s '%s'", name, raw)
	}
	return id, nil
}

// parseQueryInt reads an optional integer query parameter
func parseQueryInt(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NewBadRequest("validation.query", "Invalid %s '%s'", name, raw)
	}
	return n, nil
}

// parseBody decodes the JSON body into dst and validates its struct tags
func parseBody(c *fiber.Ctx, dst any, errorType string) error {
	if err := c.BodyParser(dst); err != nil {
		return types.NewBadRequest(errorType, "Invalid input: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return types.NewBadRequest(errorType, "%s", validationMessage(err))
	}
	return nil
}

// validationMessage flattens validator errors into one readable line
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(parts, "; ")
}

// respondError renders request and service errors with the standard envelope
func respondError(c *fiber.Ctx, err error, errorType string) error {
	var reqErr *types.CustomError
	if errors.As(err, &reqErr) {
		return utils.ErrorResponse(c, reqErr.Message, reqErr.Code, reqErr.Type)
	}

	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		svcErr = &services.Error{Kind: services.KindStore, Message: err.Error()}
	}

	switch svcErr.Kind {
	case services.KindNotFound:
		return utils.NotFoundResponse(c, svcErr.Message)
	case services.KindConflict:
		return utils.ConflictResponse(c, svcErr.Message, errorType+".conflict")
	case services.KindBadRequest:
		return utils.ErrorResponse(c, svcErr.Message, fiber.StatusBadRequest, errorType+".validation")
	default:
		log.Ctx(c.UserContext()).Error().Err(err).Str("operation", errorType).Msg("Store error")
		return utils.ErrorResponse(c, svcErr.Error(), fiber.StatusBadRequest, errorType+".store")
	}
}

// ErrorHandler handles errors that escape the route handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		errorType := "unknown"
		if fiberErr.Code == fiber.StatusNotFound {
			errorType = "notFound"
		}
		return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code, errorType)
	}

	var reqErr *types.CustomError
	var svcErr *services.Error
	if errors.As(err, &reqErr) || errors.As(err, &svcErr) {
		return respondError(c, err, "request")
	}

	log.Ctx(c.UserContext()).Error().Err(err).Msg("Unhandled error")
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "unknown")
}

// NotFound handles requests no route matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
