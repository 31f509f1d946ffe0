package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/pkg/optional"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Nombres de campo del JSON (o del query string) en los errores.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	// Un optional.Value se valida como su puntero: nil (no enviado / null) pasa por omitempty.
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		return f.Interface().(optional.Value[string]).Ptr()
	}, optional.Value[string]{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		return f.Interface().(optional.Value[int64]).Ptr()
	}, optional.Value[int64]{})
	return v
}

// ValidationError error de entrada con detalle por campo.
type ValidationError struct {
	Code    string
	Message string
	Details []dto.FieldError
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(code, message string, details ...dto.FieldError) error {
	return &ValidationError{Code: code, Message: message, Details: details}
}

// validateStruct corre las reglas de validate y las traduce a ValidationError.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return invalid("VALIDATION", err.Error())
	}
	details := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return invalid("VALIDATION", "la validación de la petición falló", details...)
}

// rejectNulls falla si llegaron null en campos que no lo admiten.
func rejectNulls(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	details := make([]dto.FieldError, 0, len(fields))
	for _, f := range fields {
		details = append(details, dto.FieldError{Field: f, Message: "no admite null"})
	}
	return invalid("VALIDATION", "la validación de la petición falló", details...)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser al menos " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser como máximo " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	default:
		return "valor inválido"
	}
}
