// Package urn provides parsing and formatting for LinkedIn entity URNs.
//
// URN format: urn:li:{entity-type}:{id}
//
// Examples:
//
//	urn:li:organization:2414183   (company page)
//	urn:li:person:aBcD3fG         (member)
//	urn:li:share:6512345678901234567
//
// The entity type is a lowerCamel word; the id is everything after the third
// colon and may itself contain colons for compound keys.
package urn

import (
	"fmt"
	"strings"
)

const prefix = "urn:li:"

// Common entity types.
const (
	Organization = "organization"
	Person       = "person"
	Share        = "share"
)

// URN represents a parsed urn:li URN.
type URN struct {
	Type string // e.g. "organization"
	ID   string // e.g. "2414183"
}

// New builds a URN from its parts, validating both.
func New(entityType, id string) (*URN, error) {
	if err := validateSegment("entity type", entityType); err != nil {
		return nil, err
	}
	if err := validateSegment("id", id); err != nil {
		return nil, err
	}
	return &URN{Type: entityType, ID: id}, nil
}

// Parse parses a urn:li URN string.
func Parse(raw string) (*URN, error) {
	if !strings.HasPrefix(raw, prefix) {
		return nil, fmt.Errorf("unsupported URN %q: expected %q prefix", raw, prefix)
	}
	rest := strings.TrimPrefix(raw, prefix)

	entityType, id, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, fmt.Errorf("URN %q must contain an entity type and id", raw)
	}
	return New(entityType, id)
}

// String returns the canonical URN string.
func (u *URN) String() string {
	return prefix + u.Type + ":" + u.ID
}

// MustParse parses a URN and panics on error. Useful in tests and init blocks.
func MustParse(raw string) *URN {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// Normalize accepts either a full URN or a bare id and returns the URN of
// entityType. A full URN of another type is an error.
func Normalize(entityType, v string) (*URN, error) {
	if !strings.HasPrefix(v, prefix) {
		return New(entityType, v)
	}
	u, err := Parse(v)
	if err != nil {
		return nil, err
	}
	if u.Type != entityType {
		return nil, fmt.Errorf("URN %q is a %s, expected %s", v, u.Type, entityType)
	}
	return u, nil
}

// validateSegment checks that a URN segment is non-empty and URL-safe enough
// to be placed in a query string unescaped.
func validateSegment(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	if strings.ContainsAny(value, " \\?#&/") {
		return fmt.Errorf("%s %q contains invalid characters", name, value)
	}
	return nil
}
