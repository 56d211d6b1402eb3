package application

import (
	"fmt"
	"strings"

	"treecreator/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "nodeID" -> "node ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"nodeID":   "node ID",
		"parentID": "parent ID",
		"targetID": "target ID",
		"sourceID": "source ID",
		"name":     "name",
		"field":    "field name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateNodeName checks a node name against the domain naming rules.
// Returns a ValidationError carrying the domain's reason.
func ValidateNodeName(fieldName, name string, kind domain.Kind) error {
	if err := domain.ValidateName(name, kind); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
		}
	}
	return nil
}

// ValidateEditorField checks that a field name is one of the editable
// fields. Returns a ValidationError listing the valid names otherwise.
func ValidateEditorField(fieldName, field string) error {
	switch field {
	case domain.FieldName, domain.FieldMarkdownShort, domain.FieldExplanation, domain.FieldCode:
		return nil
	}
	return &ValidationError{
		Field: fieldName,
		Message: fmt.Sprintf("unknown editor field %q, valid fields: %s", field,
			strings.Join([]string{domain.FieldName, domain.FieldMarkdownShort, domain.FieldExplanation, domain.FieldCode}, ", ")),
	}
}
