package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// CurrentMemberProfile fetches the authenticated member's profile, projected
// to fields, e.g. []string{"id", "localizedFirstName", "localizedLastName"}.
func (c *Client) CurrentMemberProfile(ctx context.Context, fields []string, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, required("access_token")
	}
	if fields == nil {
		return nil, &ValidationError{Field: "fields", Message: "Fields must be an array"}
	}
	endpoint := c.apiBase + "/me?projection=(" + strings.Join(fields, ",") + ")"
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Bearer(accessToken))
}

// CurrentMemberEmail fetches the authenticated member's email handles.
func (c *Client) CurrentMemberEmail(ctx context.Context, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, required("access_token")
	}
	endpoint := c.apiBase + "/emailAddress?q=members&projection=(elements*(handle~))"
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Bearer(accessToken))
}

// TotalConnectionsNumber asks for an empty page of first-degree connections;
// the total lives in paging.total of the result.
func (c *Client) TotalConnectionsNumber(ctx context.Context, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, required("access_token")
	}
	endpoint := c.apiBase + "/connections?q=viewer&start=0&count=0"
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Bearer(accessToken))
}
