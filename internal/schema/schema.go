// Package schema provides synchronous, field-level validation for case
// creation input. It is the single validation path: the create form runs it
// before submitting and the API handler runs it before touching the service
// layer, so both report the same Spanish messages for the same violations.
package schema

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dcdanielca/casetracker/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldNames maps Go struct field names to their wire names.
var fieldNames = map[string]string{
	"Title":        "title",
	"Description":  "description",
	"CaseType":     "case_type",
	"Priority":     "priority",
	"CreatedBy":    "created_by",
	"Queries":      "queries",
	"DatabaseName": "database_name",
	"SchemaName":   "schema_name",
	"QueryText":    "query_text",
}

// messages maps wire field name and violated tag to the user-facing message.
// An empty string on a field means absence, so "required" and "min" share
// the minimum-length message.
var messages = map[string]map[string]string{
	"title": {
		"required": "El título debe tener al menos 5 caracteres",
		"min":      "El título debe tener al menos 5 caracteres",
		"max":      "El título no puede exceder 200 caracteres",
	},
	"description": {
		"required": "La descripción debe tener al menos 10 caracteres",
		"min":      "La descripción debe tener al menos 10 caracteres",
		"max":      "La descripción no puede exceder 2000 caracteres",
	},
	"case_type": {
		"required": "Selecciona un tipo de caso válido",
		"oneof":    "Selecciona un tipo de caso válido",
	},
	"priority": {
		"required": "Selecciona una prioridad válida",
		"oneof":    "Selecciona una prioridad válida",
	},
	"created_by": {
		"required": "El nombre debe tener al menos 3 caracteres",
		"min":      "El nombre debe tener al menos 3 caracteres",
		"max":      "El nombre no puede exceder 100 caracteres",
	},
	"queries": {
		"required": "Debe haber al menos una query",
		"min":      "Debe haber al menos una query",
		"max":      "No puedes agregar más de 10 queries",
	},
	"database_name": {
		"required": "El nombre de la base de datos es requerido",
		"max":      "El nombre de la base de datos no puede exceder 100 caracteres",
	},
	"schema_name": {
		"required": "El nombre del schema es requerido",
		"max":      "El nombre del schema no puede exceder 100 caracteres",
	},
	"query_text": {
		"required": "La query debe tener al menos 5 caracteres",
		"min":      "La query debe tener al menos 5 caracteres",
		"max":      "La query no puede exceder 5000 caracteres",
	},
}

// ValidateCreateCase checks in against the creation constraints and returns
// one message per invalid field, keyed by wire path (nested query fields are
// keyed "queries.<index>.<field>"). It returns nil when the input is valid.
func ValidateCreateCase(in domain.CreateCaseInput) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": "Ocurrió un error inesperado"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := wirePath(fe.StructNamespace())
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = messageFor(fe)
	}
	return out
}

// messageFor resolves the Spanish message for a single field error.
func messageFor(fe validator.FieldError) string {
	name := fieldNames[fe.StructField()]
	if byTag, ok := messages[name]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return "Valor inválido"
}

// wirePath converts a validator struct namespace such as
// "CreateCaseInput.Queries[2].QueryText" to "queries.2.query_text".
func wirePath(ns string) string {
	segments := strings.Split(ns, ".")
	if len(segments) > 1 {
		segments = segments[1:] // drop the root struct name
	}

	parts := make([]string, 0, len(segments)+1)
	for _, seg := range segments {
		name := seg
		index := ""
		if i := strings.IndexByte(seg, '['); i >= 0 {
			name = seg[:i]
			index = strings.TrimSuffix(seg[i+1:], "]")
		}
		if wire, ok := fieldNames[name]; ok {
			name = wire
		}
		parts = append(parts, name)
		if index != "" {
			parts = append(parts, index)
		}
	}
	return strings.Join(parts, ".")
}
