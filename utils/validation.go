package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidPropertyID reports whether id is a well-formed property identifier
// (a hex ObjectID string as assigned on creation).
func IsValidPropertyID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// RequestValidator plugs go-playground/validator into Echo so handlers can
// call c.Validate on bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
