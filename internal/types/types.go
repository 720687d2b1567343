// Package types holds the data structures shared across the application.
// Keeping them in one place prevents import cycles: handlers, storage and
// validation can all import types without depending on each other.
package types

import "strings"

// Contact is a single record in the contact list.
//
// ID is assigned by the storage layer and never changes after creation.
// The JSON names use camelCase to match what API clients send and expect.
type Contact struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

// ContactInput is the request body accepted by create and update.
//
// validate:"required" is checked by go-playground/validator after the
// fields have been trimmed, so "   " counts as missing. The email format
// rule is registered separately because it can be switched off.
type ContactInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
}

// Trimmed returns a copy of the input with surrounding whitespace removed
// from every field.
func (in ContactInput) Trimmed() ContactInput {
	return ContactInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
	}
}

// Contact builds a record from the input. The id is left for storage to
// fill in on create, or set by the caller on update.
func (in ContactInput) Contact(id int64) Contact {
	return Contact{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Telephone: in.Telephone,
	}
}
