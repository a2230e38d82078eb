package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifiable lo cumplen las entidades que exponen su ID de la API.
type Identifiable interface {
	EntityID() string
}

// Ref representa una referencia que la API devuelve como ID ("64f...") o como objeto poblado
// ({"_id": "64f...", ...}). Es una variante explícita: Reference(id) | Populated(entidad).
// Se serializa igual que llegó: ID o entidad. Las escrituras a la API usan Unpopulated.
type Ref[T any] struct {
	id        string
	populated *T
}

// Reference construye una referencia sólo por ID.
func Reference[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// Populated construye una referencia con la entidad completa.
func Populated[T Identifiable](e T) Ref[T] {
	return Ref[T]{id: e.EntityID(), populated: &e}
}

// ID devuelve el identificador, esté o no poblada la referencia.
func (r Ref[T]) ID() string { return r.id }

// Entity devuelve la entidad poblada; ok=false si la referencia es sólo un ID.
func (r Ref[T]) Entity() (*T, bool) {
	return r.populated, r.populated != nil
}

// IsPopulated indica si la referencia trae la entidad completa.
func (r Ref[T]) IsPopulated() bool { return r.populated != nil }

// IsZero indica una referencia vacía (ni ID ni entidad).
func (r Ref[T]) IsZero() bool { return r.id == "" && r.populated == nil }

// Unpopulated devuelve la referencia sólo por ID.
func (r Ref[T]) Unpopulated() Ref[T] { return Ref[T]{id: r.id} }

// MarshalJSON emite la entidad si está poblada, si no el ID (o null si la referencia está vacía).
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.populated != nil:
		return json.Marshal(r.populated)
	case r.id == "":
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON acepta un string (ID) o un objeto (entidad poblada).
func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref[T]{id: id}
		return nil
	}
	var e T
	if err := json.Unmarshal(b, &e); err != nil {
		return fmt.Errorf("referencia: %w", err)
	}
	var id string
	if ident, ok := any(e).(Identifiable); ok {
		id = ident.EntityID()
	}
	*r = Ref[T]{id: id, populated: &e}
	return nil
}
