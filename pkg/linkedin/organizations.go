package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jmerrifield20/linkedin-rest/pkg/urn"
)

// UserOrganizationsList lists the organizations the authenticated member
// administers (approved ADMINISTRATOR role assignments).
func (c *Client) UserOrganizationsList(ctx context.Context, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, required("access_token")
	}
	endpoint := c.apiBase + "/organizationalEntityAcls?q=roleAssignee&role=ADMINISTRATOR&state=APPROVED"
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Bearer(accessToken))
}

// OrganizationAdmins lists the approved administrators of organizationURN,
// e.g. "urn:li:organization:2414183".
//
// The request is sent without an Authorization header, unlike every other
// API call in this package. Whether LinkedIn serves this endpoint publicly
// is unconfirmed; callers needing an authenticated lookup should treat a
// 401 HTTPStatusError as that signal.
func (c *Client) OrganizationAdmins(ctx context.Context, organizationURN string) (json.RawMessage, error) {
	if organizationURN == "" {
		return nil, required("organization_urn")
	}
	org, err := urn.Parse(organizationURN)
	if err != nil {
		return nil, &ValidationError{Field: "organization_urn", Message: err.Error()}
	}
	if org.Type != urn.Organization {
		return nil, &ValidationError{
			Field:   "organization_urn",
			Message: fmt.Sprintf("URN %q is not an organization", organizationURN),
		}
	}
	endpoint := c.apiBase + "/organizationalEntityAcls?q=organizationalTarget&organizationalTarget=" +
		org.String() + "&role=ADMINISTRATOR&state=APPROVED"
	return c.invoke(ctx, http.MethodGet, endpoint, nil, nil, Unauthenticated)
}
