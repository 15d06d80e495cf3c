package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hugmood/hugmood/backend/internal/apierror"
)

// fieldErrorsFromBinding converts gin binding failures into per-field
// errors so clients get every problem in one response
func fieldErrorsFromBinding(err error) []apierror.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fieldErrors := make([]apierror.FieldError, 0, len(verrs))
	for _, ve := range verrs {
		fe := apierror.FieldError{
			Field: strings.ToLower(ve.Field()),
			Code:  ve.Tag(),
		}
		switch ve.Tag() {
		case "required":
			fe.Message = "is required"
		case "min":
			fe.Message = fmt.Sprintf("must be at least %s", ve.Param())
		case "max":
			fe.Message = fmt.Sprintf("must be at most %s", ve.Param())
		default:
			fe.Message = fmt.Sprintf("failed %s validation", ve.Tag())
		}
		fieldErrors = append(fieldErrors, fe)
	}
	return fieldErrors
}
