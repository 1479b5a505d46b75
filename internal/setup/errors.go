package setup

import "fmt"

type MissingConfigError struct {
	Field string
}

func (e MissingConfigError) Error() string {
	return fmt.Sprintf("configuration %q not set", e.Field)
}

func NewMissingConfigError(field string) *MissingConfigError {
	return &MissingConfigError{
		Field: field,
	}
}
