package org

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"
)

// Builder walks the organization hierarchy depth-first and produces a
// fully materialized Tree. The walk is all-or-nothing: any provider
// failure aborts the build and no partial tree is returned.
type Builder struct {
	client     Client
	classifier *Classifier
	aliases    map[string]string
}

// NewBuilder returns a builder over the given client. aliases maps
// account emails to display-name overrides, applied before sorting and
// classification; it may be nil.
func NewBuilder(client Client, classifier *Classifier, aliases map[string]string) *Builder {
	return &Builder{
		client:     client,
		classifier: classifier,
		aliases:    aliases,
	}
}

// Build fetches the organization root and recursively descends into
// every organizational unit. Both listing calls per container are
// fully drained by the client before the builder proceeds. Accounts
// that are not ACTIVE are discarded; containers and accounts that the
// provider lists twice are kept once. Empty containers are retained.
func (b *Builder) Build(ctx context.Context) (*Tree, error) {
	root, err := b.client.DescribeRoot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "describing organization root")
	}

	node := &Container{ID: root.ID, Name: root.Name}
	seen := map[string]struct{}{root.ID: {}}

	if err := b.walk(ctx, node, seen); err != nil {
		return nil, err
	}

	return &Tree{OrganizationID: root.OrganizationID, Root: node}, nil
}

func (b *Builder) walk(ctx context.Context, parent *Container, seen map[string]struct{}) error {
	units, err := b.client.ListChildUnits(ctx, parent.ID)
	if err != nil {
		return errors.Wrapf(err, "listing organizational units under %s", parent.ID)
	}

	for _, unit := range units {
		if _, dup := seen[unit.ID]; dup {
			continue
		}
		seen[unit.ID] = struct{}{}

		child := &Container{ID: unit.ID, Name: unit.Name}
		if err := b.walk(ctx, child, seen); err != nil {
			return err
		}
		parent.Children = append(parent.Children, child)
	}

	accounts, err := b.client.ListAccounts(ctx, parent.ID)
	if err != nil {
		return errors.Wrapf(err, "listing accounts under %s", parent.ID)
	}

	for _, account := range accounts {
		if account.Status != StatusActive {
			continue
		}
		if _, dup := seen[account.ID]; dup {
			continue
		}
		seen[account.ID] = struct{}{}

		if name, ok := b.aliases[account.Email]; ok {
			account.Name = name
		}
		account.Env = b.classifier.Classify(account.Name)
		parent.Accounts = append(parent.Accounts, account)
	}

	sort.Slice(parent.Accounts, func(i, j int) bool {
		return parent.Accounts[i].Name < parent.Accounts[j].Name
	})

	return nil
}
