package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	"github.com/jmerrifield20/linkedin-rest/pkg/urn"
	"github.com/spf13/cobra"
)

// apiCall runs fn with a fresh client and the configured access token and
// prints the result.
func apiCall(fn func(c *linkedin.Client, token string) (json.RawMessage, error)) error {
	token, err := accessToken()
	if err != nil {
		return err
	}
	c, err := newClient()
	if err != nil {
		return err
	}
	raw, err := fn(c, token)
	if err != nil {
		return err
	}
	return printResult(raw)
}

// ── me / email / connections ─────────────────────────────────────────────────

var meFields []string

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated member's profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return apiCall(func(c *linkedin.Client, token string) (json.RawMessage, error) {
			return c.CurrentMemberProfile(cmd.Context(), meFields, token)
		})
	},
}

var emailPrimaryOnly bool

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Show the authenticated member's email address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := accessToken()
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		raw, err := c.CurrentMemberEmail(cmd.Context(), token)
		if err != nil {
			return err
		}
		if !emailPrimaryOnly {
			return printResult(raw)
		}
		e, err := linkedin.Decode[linkedin.EmailAddresses](raw)
		if err != nil {
			return err
		}
		if e == nil || e.Primary() == "" {
			fmt.Fprintln(stderr, "not found")
			return nil
		}
		fmt.Fprintln(stdout, e.Primary())
		return nil
	},
}

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Print the number of first-degree connections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := accessToken()
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		raw, err := c.TotalConnectionsNumber(cmd.Context(), token)
		if err != nil {
			return err
		}
		summary, err := linkedin.Decode[linkedin.ConnectionsSummary](raw)
		if err != nil {
			return err
		}
		if summary == nil {
			fmt.Fprintln(stderr, "not found")
			return nil
		}
		fmt.Fprintln(stdout, summary.Paging.Total)
		return nil
	},
}

// ── shares ───────────────────────────────────────────────────────────────────

var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "Post, fetch, and list shares",
}

var sharePostCmd = &cobra.Command{
	Use:   "post <file.json|->",
	Short: "Publish the share document in file (or stdin with -)",
	Long: `post publishes a share. The document is sent as-is, e.g.:

  {
    "owner": "urn:li:organization:2414183",
    "text": {"text": "Hello from the CLI"},
    "distribution": {"linkedInDistributionTarget": {}}
  }`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readJSON(args[0])
		if err != nil {
			return err
		}
		return apiCall(func(c *linkedin.Client, token string) (json.RawMessage, error) {
			return c.PostShareFromAccount(cmd.Context(), body, token)
		})
	},
}

var shareGetCmd = &cobra.Command{
	Use:   "get <share-id>",
	Short: "Fetch a single share",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return apiCall(func(c *linkedin.Client, token string) (json.RawMessage, error) {
			return c.ShareByID(cmd.Context(), args[0], token)
		})
	},
}

var (
	shareOwnerType string
	shareOwnerID   string
	shareOpts      linkedin.ShareListOptions
)

var shareListCmd = &cobra.Command{
	Use:   "list [owner-urn]",
	Short: "List shares by owner",
	Long: `list pages through shares owned by an organization or person.

The owner is given either as a URN argument or with --type and --id:

  linkedin shares list urn:li:organization:2414183
  linkedin shares list --type person --id aBcD3fG --count 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerType, id := shareOwnerType, shareOwnerID
		if len(args) == 1 {
			u, err := urn.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid owner: %w", err)
			}
			ownerType, id = u.Type, u.ID
		}
		return apiCall(func(c *linkedin.Client, token string) (json.RawMessage, error) {
			return c.SharesByOwner(cmd.Context(), linkedin.OwnerType(ownerType), id, &shareOpts, token)
		})
	},
}

// ── orgs ─────────────────────────────────────────────────────────────────────

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Organization access control lookups",
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations the authenticated member administers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return apiCall(func(c *linkedin.Client, token string) (json.RawMessage, error) {
			return c.UserOrganizationsList(cmd.Context(), token)
		})
	},
}

var orgAdminsCmd = &cobra.Command{
	Use:   "admins <organization-id|urn>",
	Short: "List the administrators of an organization",
	Long: `admins lists approved administrators of an organization. The request
is sent without an access token.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		org, err := urn.Normalize(urn.Organization, args[0])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		raw, err := c.OrganizationAdmins(cmd.Context(), org.String())
		if err != nil {
			return err
		}
		return printResult(raw)
	},
}

func init() {
	meCmd.Flags().StringSliceVar(&meFields, "fields", []string{"id", "localizedFirstName", "localizedLastName"}, "profile fields to project")
	emailCmd.Flags().BoolVar(&emailPrimaryOnly, "primary", false, "print only the primary address")

	shareListCmd.Flags().StringVar(&shareOwnerType, "type", "organization", "owner type: organization or person")
	shareListCmd.Flags().StringVar(&shareOwnerID, "id", "", "owner id")
	shareListCmd.Flags().IntVar(&shareOpts.Start, "start", linkedin.DefaultSharesStart, "index of the first share")
	shareListCmd.Flags().IntVar(&shareOpts.Count, "count", linkedin.DefaultSharesCount, "page size")
	shareListCmd.Flags().IntVar(&shareOpts.SharesPerOwner, "per-owner", linkedin.DefaultSharesPerOwner, "maximum shares per owner")

	sharesCmd.AddCommand(sharePostCmd, shareGetCmd, shareListCmd)
	orgsCmd.AddCommand(orgListCmd, orgAdminsCmd)

	rootCmd.AddCommand(meCmd, emailCmd, connectionsCmd, sharesCmd, orgsCmd)
}

// readJSON reads a JSON document from path, or stdin when path is "-".
func readJSON(path string) (json.RawMessage, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b = []byte(strings.TrimSpace(string(b)))
	if !json.Valid(b) {
		return nil, errors.New("share document is not valid JSON")
	}
	return json.RawMessage(b), nil
}
