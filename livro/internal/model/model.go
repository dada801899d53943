package model

import (
	"fmt"
	"time"
)

type Livro struct {
	ID        *int64  `json:"id" db:"id"`
	Titulo    *string `json:"titulo" db:"titulo" validate:"required"`
	Categoria *string `json:"categoria" db:"categoria" validate:"required"`
}

func NewLivro(titulo, categoria string) Livro {
	return Livro{
		Titulo:    &titulo,
		Categoria: &categoria,
	}
}

// Equal reports identity equality: both ids set and the same.
// A livro without id only equals itself.
func (l *Livro) Equal(other *Livro) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil || l.ID == nil || other.ID == nil {
		return false
	}
	return *l.ID == *other.ID
}

func (l Livro) String() string {
	return fmt.Sprintf("Livro{id=%s, titulo='%s', categoria='%s'}", fmtID(l.ID), deref(l.Titulo), deref(l.Categoria))
}

func fmtID(id *int64) string {
	if id == nil {
		return "null"
	}
	return fmt.Sprint(*id)
}

func deref(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

type Order struct {
	Field string
	Desc  bool
}

func IsSortable(field string) bool {
	switch field {
	case "id", "titulo", "categoria":
		return true
	}
	return false
}

type EventType string

const (
	EventCreated EventType = "CREATED"
	EventUpdated EventType = "UPDATED"
	EventDeleted EventType = "DELETED"
)

type LivroEvent struct {
	EventID   string    `json:"eventId"`
	Type      EventType `json:"type"`
	Livro     Livro     `json:"livro"`
	Timestamp time.Time `json:"timestamp"`
}
