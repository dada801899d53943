package errs

import (
	"errors"
)

const EntityName = "livro"

var (
	ErrNotFound = errors.New("not found")

	ErrIDExists    = NewBadRequestAlert("A new livro cannot already have an ID", EntityName, "idexists")
	ErrIDNull      = NewBadRequestAlert("Invalid id", EntityName, "idnull")
	ErrInvalidSort = NewBadRequestAlert("Invalid sort property", EntityName, "sortinvalid")
	ErrInvalidID   = NewBadRequestAlert("Invalid id", EntityName, "idinvalid")
)

// BadRequestAlert is a client error carrying an i18n key for the alert headers.
type BadRequestAlert struct {
	Title      string
	EntityName string
	ErrorKey   string
}

func NewBadRequestAlert(title, entityName, errorKey string) *BadRequestAlert {
	return &BadRequestAlert{Title: title, EntityName: entityName, ErrorKey: errorKey}
}

func (e *BadRequestAlert) Error() string {
	return e.Title
}

type FieldError struct {
	ObjectName string `json:"objectName"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].Field + " " + e.Fields[0].Message
}
