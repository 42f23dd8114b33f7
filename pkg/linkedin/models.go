package linkedin

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Decode unmarshals a raw result into a *T. A nil result (404) decodes to a
// nil *T with no error, so "absent" stays distinguishable from "empty".
func Decode[T any](raw json.RawMessage) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %T: %w", v, err)
	}
	return &v, nil
}

// AccessToken is the accessToken endpoint response.
type AccessToken struct {
	AccessToken           string `json:"access_token"`
	ExpiresIn             int64  `json:"expires_in"`
	RefreshToken          string `json:"refresh_token,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in,omitempty"`
	Scope                 string `json:"scope,omitempty"`
	IDToken               string `json:"id_token,omitempty"`
}

// Token converts t to an oauth2.Token, computing Expiry from now.
func (t *AccessToken) Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: t.RefreshToken,
	}
	if t.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(t.ExpiresIn) * time.Second)
	}
	if t.IDToken != "" {
		tok = tok.WithExtra(map[string]any{"id_token": t.IDToken})
	}
	return tok
}

// Scopes splits the granted scope list. LinkedIn separates scopes with
// commas; spaces are accepted too.
func (t *AccessToken) Scopes() []string {
	return strings.FieldsFunc(t.Scope, func(r rune) bool { return r == ',' || r == ' ' })
}

// IDTokenClaims decodes the OpenID Connect id_token without verifying its
// signature. Use it for display only; it is not proof of identity.
func (t *AccessToken) IDTokenClaims() (jwt.MapClaims, error) {
	if t.IDToken == "" {
		return nil, errors.New("no id_token in response")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.IDToken, claims); err != nil {
		return nil, fmt.Errorf("parse id_token: %w", err)
	}
	return claims, nil
}

// EmailAddresses is the emailAddress?q=members response.
type EmailAddresses struct {
	Elements []struct {
		Handle      string `json:"handle"`
		HandleTilde struct {
			EmailAddress string `json:"emailAddress"`
		} `json:"handle~"`
	} `json:"elements"`
}

// Primary returns the first email address, or "" when there is none.
func (e *EmailAddresses) Primary() string {
	for _, el := range e.Elements {
		if el.HandleTilde.EmailAddress != "" {
			return el.HandleTilde.EmailAddress
		}
	}
	return ""
}

// ConnectionsSummary is the connections?q=viewer&count=0 response.
type ConnectionsSummary struct {
	Paging Paging `json:"paging"`
}

// Paging is the Rest.li collection paging block.
type Paging struct {
	Start int `json:"start"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// LocalizedString is a multi-locale text field such as firstName.
type LocalizedString struct {
	Localized       map[string]string `json:"localized"`
	PreferredLocale struct {
		Country  string `json:"country"`
		Language string `json:"language"`
	} `json:"preferredLocale"`
}

// Preferred returns the value for the preferred locale, falling back to any
// available value.
func (l LocalizedString) Preferred() string {
	key := l.PreferredLocale.Language + "_" + l.PreferredLocale.Country
	if v, ok := l.Localized[key]; ok {
		return v
	}
	for _, v := range l.Localized {
		return v
	}
	return ""
}

// OrganizationACLs is the organizationalEntityAcls finder response.
type OrganizationACLs struct {
	Paging   Paging `json:"paging"`
	Elements []struct {
		Role                 string `json:"role"`
		State                string `json:"state"`
		RoleAssignee         string `json:"roleAssignee"`
		OrganizationalTarget string `json:"organizationalTarget"`
	} `json:"elements"`
}
