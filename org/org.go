// Package org models an AWS Organization as a tree of containers
// (the root and organizational units) holding member accounts, and
// provides the builder that walks the hierarchy plus the renderer
// that formats it for a terminal.
package org

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
)

// StatusActive is the lifecycle status of accounts eligible for display.
const StatusActive = "ACTIVE"

// Container is a non-leaf node in the organization: the root or an
// organizational unit. Child containers keep provider order; accounts
// are sorted by display name by the builder.
type Container struct {
	ID       string
	Name     string
	Children []*Container
	Accounts []Account
}

// Account is a leaf member account. Env is derived from the display
// name by the classifier and never changes after the build.
type Account struct {
	ID     string
	Name   string
	Email  string
	Status string
	Env    Environment
}

// Root identifies the organization and its top-level container.
type Root struct {
	OrganizationID string
	ID             string
	Name           string
}

// Tree is a fully materialized organization hierarchy. It is rebuilt
// on every invocation and discarded after rendering.
type Tree struct {
	OrganizationID string
	Root           *Container
}

// Accounts flattens the tree into a single depth-first ordered slice,
// matching the order accounts appear in the rendered tree view.
func (t *Tree) Accounts() []Account {
	var out []Account
	var visit func(*Container)
	visit = func(c *Container) {
		for _, child := range c.Children {
			visit(child)
		}
		out = append(out, c.Accounts...)
	}
	visit(t.Root)
	return out
}

// Client provides read-only access to the organization hierarchy.
// Implementations must drain provider pagination before returning.
type Client interface {
	// DescribeRoot returns the organization id and its root container.
	DescribeRoot(ctx context.Context) (Root, error)

	// ListChildUnits returns the direct child organizational units of
	// a container, in provider order, with empty Children/Accounts.
	ListChildUnits(ctx context.Context, parentID string) ([]Container, error)

	// ListAccounts returns the direct member accounts of a container,
	// regardless of lifecycle status.
	ListAccounts(ctx context.Context, parentID string) ([]Account, error)
}

// Environment classifies an account by the naming convention.
type Environment string

const (
	EnvAll     Environment = "ALL"
	EnvProd    Environment = "PROD"
	EnvNonProd Environment = "NON-PROD"
	EnvUnknown Environment = "UNKNOWN"
)

// ParseEnvironment normalizes user input ("prod", "Non-Prod", ...) to
// an Environment usable as a filter.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strcase.ToScreamingKebab(s)); env {
	case EnvAll, EnvProd, EnvNonProd:
		return env, nil
	default:
		return "", errors.Newf("invalid environment %q: use ALL, PROD or NON-PROD", s)
	}
}

// Matches reports whether an account with this tag passes the given
// filter. EnvAll passes everything; otherwise the tag must match
// exactly, so EnvUnknown never passes a PROD/NON-PROD filter.
func (e Environment) Matches(filter Environment) bool {
	return filter == EnvAll || e == filter
}
