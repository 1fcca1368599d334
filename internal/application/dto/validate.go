package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre JSON del campo (SERIAL, email...), no el de Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Los montos se validan como número (gt/lt) y no como struct.
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate aplica los tags `validate` de un DTO. La API y la carga masiva
// comparten estas reglas; los max coinciden con el ancho de las columnas.
func Validate(in any) error {
	return validate.Struct(in)
}

// ValidationMessages un mensaje legible por campo inválido.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"datos inválidos"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s es requerido", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s no es un email válido", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s excede el máximo de %s", fe.Field(), fe.Param()))
		case "gt", "lt":
			msgs = append(msgs, fmt.Sprintf("%s fuera de rango", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s no cumple '%s'", fe.Field(), fe.Tag()))
		}
	}
	return msgs
}
