// Package validation turns validator errors into the field->message maps the
// form dialogs render.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromValidationError maps each failed field to a user-facing message, keyed
// by the field's form tag. dst is the validated struct (pointer accepted),
// used only to read tags. Non-validator errors collapse to a single generic
// entry under "_".
func FromValidationError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	out["_"] = "Dados do formulário inválidos."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("form")
	if tag == "" {
		return strings.ToLower(structField)
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "Este campo é obrigatório."
	case "preco_brl":
		return "Informe um preço válido."
	case "estoque":
		return "Informe um estoque válido (zero ou maior)."
	case "min":
		return "Deve ter pelo menos " + param + " caracteres."
	case "max":
		return "Deve ter no máximo " + param + " caracteres."
	default:
		return "Valor inválido."
	}
}
