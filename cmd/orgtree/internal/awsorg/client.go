// Package awsorg implements org.Client on top of the AWS Organizations
// API. All listing calls drain the service paginators before returning,
// so callers never see continuation tokens.
package awsorg

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/cockroachdb/errors"

	"github.com/orgkit/orgtree/org"
)

// API is the subset of the Organizations service the client calls.
type API interface {
	DescribeOrganization(ctx context.Context, params *organizations.DescribeOrganizationInput, optFns ...func(*organizations.Options)) (*organizations.DescribeOrganizationOutput, error)
	organizations.ListRootsAPIClient
	organizations.ListOrganizationalUnitsForParentAPIClient
	organizations.ListAccountsForParentAPIClient
}

type Client struct {
	api API
}

// New resolves shared-config credentials for the given profile and
// region and returns a client over the Organizations service.
func New(ctx context.Context, profile, region string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithSharedConfigProfile(profile),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "loading aws configuration for profile %q", profile)
	}

	return &Client{api: organizations.NewFromConfig(cfg)}, nil
}

// NewFromAPI wraps an existing Organizations API, for tests.
func NewFromAPI(api API) *Client {
	return &Client{api: api}
}

func (c *Client) DescribeRoot(ctx context.Context) (org.Root, error) {
	desc, err := c.api.DescribeOrganization(ctx, &organizations.DescribeOrganizationInput{})
	if err != nil {
		return org.Root{}, err
	}

	paginator := organizations.NewListRootsPaginator(c.api, &organizations.ListRootsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return org.Root{}, err
		}
		for _, root := range page.Roots {
			return org.Root{
				OrganizationID: aws.ToString(desc.Organization.Id),
				ID:             aws.ToString(root.Id),
				Name:           aws.ToString(root.Name),
			}, nil
		}
	}

	return org.Root{}, errors.New("organization has no root")
}

func (c *Client) ListChildUnits(ctx context.Context, parentID string) ([]org.Container, error) {
	var units []org.Container

	paginator := organizations.NewListOrganizationalUnitsForParentPaginator(c.api,
		&organizations.ListOrganizationalUnitsForParentInput{ParentId: aws.String(parentID)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, unit := range page.OrganizationalUnits {
			units = append(units, org.Container{
				ID:   aws.ToString(unit.Id),
				Name: aws.ToString(unit.Name),
			})
		}
	}

	return units, nil
}

func (c *Client) ListAccounts(ctx context.Context, parentID string) ([]org.Account, error) {
	var accounts []org.Account

	paginator := organizations.NewListAccountsForParentPaginator(c.api,
		&organizations.ListAccountsForParentInput{ParentId: aws.String(parentID)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, account := range page.Accounts {
			accounts = append(accounts, org.Account{
				ID:     aws.ToString(account.Id),
				Name:   aws.ToString(account.Name),
				Email:  aws.ToString(account.Email),
				Status: string(account.Status),
			})
		}
	}

	return accounts, nil
}
