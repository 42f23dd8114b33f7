package urn_test

import (
	"testing"

	"github.com/jmerrifield20/linkedin-rest/pkg/urn"
)

func TestParse_valid(t *testing.T) {
	cases := []struct {
		input      string
		entityType string
		id         string
	}{
		{input: "urn:li:organization:2414183", entityType: "organization", id: "2414183"},
		{input: "urn:li:person:aBcD3fG", entityType: "person", id: "aBcD3fG"},
		{input: "urn:li:share:6512345678901234567", entityType: "share", id: "6512345678901234567"},
		{input: "urn:li:activity:urn:li:ugcPost:42", entityType: "activity", id: "urn:li:ugcPost:42"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			u, err := urn.Parse(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.Type != tc.entityType {
				t.Errorf("Type: got %q, want %q", u.Type, tc.entityType)
			}
			if u.ID != tc.id {
				t.Errorf("ID: got %q, want %q", u.ID, tc.id)
			}
		})
	}
}

func TestParse_invalid(t *testing.T) {
	cases := []string{
		"urn:x:organization:1",    // wrong namespace
		"urn:li:organization",     // missing id
		"urn:li::2414183",         // empty type
		"urn:li:organization:",    // empty id
		"urn:li:organization:1 2", // space in id
		"https://linkedin.com/in/x",
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc, func(t *testing.T) {
			_, err := urn.Parse(tc)
			if err == nil {
				t.Errorf("expected error for %q but got nil", tc)
			}
		})
	}
}

func TestURN_String(t *testing.T) {
	raw := "urn:li:organization:6177438"
	u, err := urn.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.String(); got != raw {
		t.Errorf("String(): got %q, want %q", got, raw)
	}
}

func TestNormalize(t *testing.T) {
	u, err := urn.Normalize(urn.Organization, "2414183")
	if err != nil {
		t.Fatal(err)
	}
	if u.String() != "urn:li:organization:2414183" {
		t.Errorf("bare id: got %q", u.String())
	}

	u, err = urn.Normalize(urn.Organization, "urn:li:organization:2414183")
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != "2414183" {
		t.Errorf("full URN: got id %q", u.ID)
	}

	if _, err := urn.Normalize(urn.Organization, "urn:li:person:abc"); err == nil {
		t.Error("expected error for URN of another type")
	}
}

func TestMustParse_panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustParse to panic on invalid URN")
		}
	}()
	urn.MustParse("not-a-urn")
}
