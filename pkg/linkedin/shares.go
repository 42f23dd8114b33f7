package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jmerrifield20/linkedin-rest/pkg/urn"
)

// OwnerType is the entity type that owns a share.
type OwnerType string

// Share owner types accepted by SharesByOwner.
const (
	OwnerOrganization OwnerType = urn.Organization
	OwnerPerson       OwnerType = urn.Person
)

// Default paging for SharesByOwner.
const (
	DefaultSharesStart    = 0
	DefaultSharesCount    = 50
	DefaultSharesPerOwner = 1000
)

// ShareListOptions pages a SharesByOwner query. A nil *ShareListOptions uses
// the Default* values. Negative values are rejected.
type ShareListOptions struct {
	// Start is the index of the first share; 0 is the first page.
	Start int
	// Count is the page size. 0 means DefaultSharesCount, not an empty page.
	Count int
	// SharesPerOwner caps shares returned per owner. 0 means
	// DefaultSharesPerOwner.
	SharesPerOwner int
}

func (o *ShareListOptions) validate() error {
	if o == nil {
		return nil
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"start", o.Start},
		{"count", o.Count},
		{"sharesPerOwner", o.SharesPerOwner},
	} {
		if f.value < 0 {
			return &ValidationError{Field: f.name, Message: fmt.Sprintf("%s must not be negative", f.name)}
		}
	}
	return nil
}

func (o *ShareListOptions) resolved() ShareListOptions {
	r := ShareListOptions{
		Start:          DefaultSharesStart,
		Count:          DefaultSharesCount,
		SharesPerOwner: DefaultSharesPerOwner,
	}
	if o == nil {
		return r
	}
	r.Start = o.Start
	if o.Count > 0 {
		r.Count = o.Count
	}
	if o.SharesPerOwner > 0 {
		r.SharesPerOwner = o.SharesPerOwner
	}
	return r
}

// PostShareFromAccount publishes body (any JSON-encodable share document)
// on behalf of the authenticated member or organization.
func (c *Client) PostShareFromAccount(ctx context.Context, body any, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, required("access_token")
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return c.invoke(ctx, http.MethodPost, c.apiBase+"/shares", headers, body, Bearer(accessToken))
}

// ShareByID fetches a single share. A share that does not exist yields
// (nil, nil).
func (c *Client) ShareByID(ctx context.Context, shareID, accessToken string) (json.RawMessage, error) {
	if shareID == "" {
		return nil, required("share_id")
	}
	if accessToken == "" {
		return nil, required("access_token")
	}
	endpoint := c.apiBase + "/shares/" + url.PathEscape(shareID)
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Bearer(accessToken))
}

// SharesByOwner lists shares owned by urn:li:{ownerType}:{id}.
func (c *Client) SharesByOwner(ctx context.Context, ownerType OwnerType, id string, opts *ShareListOptions, accessToken string) (json.RawMessage, error) {
	if ownerType != OwnerOrganization && ownerType != OwnerPerson {
		return nil, &ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("Type must be one of %q or %q", OwnerOrganization, OwnerPerson),
		}
	}
	if id == "" {
		return nil, required("id")
	}
	if accessToken == "" {
		return nil, required("access_token")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	owner, err := urn.New(string(ownerType), id)
	if err != nil {
		return nil, &ValidationError{Field: "id", Message: err.Error()}
	}

	p := opts.resolved()
	endpoint := fmt.Sprintf("%s/shares?q=owners&owners=%s&start=%d&count=%d&sharesPerOwner=%d",
		c.apiBase, owner, p.Start, p.Count, p.SharesPerOwner)
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Bearer(accessToken))
}
