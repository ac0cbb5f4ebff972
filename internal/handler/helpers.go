package handler

import (
	"net/http"
	"reflect"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apierror"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// serviceError maps a service failure to an HTTP status by its error kind:
// client mistakes get 400/404, races and double reversals get 409, broken
// invariants get 500 with the detail hidden behind the error handler.
func serviceError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindClient:
		status := http.StatusBadRequest
		if apperr.CodeOf(err) == "ITEM_NOT_FOUND" {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		// Surface through the error-handler middleware so it is logged
		// with request context before the generic 500 goes out.
		_ = c.Error(err)
	}
}

// parseUUID reads a UUID path parameter, writing a 400 on failure.
func parseUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// actorID pulls the authenticated user's id out of the JWT claims.
func actorID(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return id
}
