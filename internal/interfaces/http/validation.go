package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Nombres de campo tal como viajan en el JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindAndValidate parsea el cuerpo JSON en out y aplica las etiquetas validate.
// Devuelve la respuesta ya escrita (y ok=false) si algo falla.
func bindAndValidate(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badBody(c)
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(validationResponse(err))
	}
	return true, nil
}

// validationResponse: si falta algún campo requerido → MISSING_PARAMETERS; si no → VALIDATION.
func validationResponse(err error) dto.ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dto.ErrorResponse{Code: CodeValidation, Message: "datos inválidos"}
	}
	fields := dto.FieldErrors{}
	missing := false
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = true
		}
		fields[fe.Field()] = validationMessage(fe)
	}
	if missing {
		return dto.ErrorResponse{Code: CodeMissingParameters, Message: "Faltan campos obligatorios", Details: fields}
	}
	return dto.ErrorResponse{Code: CodeValidation, Message: "Datos inválidos", Details: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "email":
		return "email inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser mayor o igual a " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser menor o igual a " + fe.Param()
	default:
		return "valor inválido"
	}
}
