package validate

import (
	"sort"
	"strings"
)

type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}

func (f *FieldsError) Error() string {
	if len(f.Fields) == 0 {
		return "Fields error"
	}
	names := make([]string, 0, len(f.Fields))
	for name := range f.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "Fields error: " + strings.Join(names, ", ")
}
