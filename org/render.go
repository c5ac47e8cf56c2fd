package org

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Mode selects what Render emits.
type Mode int

const (
	// ModeFull shows containers and their accounts.
	ModeFull Mode = iota
	// ModeUnitsOnly shows the container hierarchy without accounts.
	ModeUnitsOnly
	// ModeAccountsOnly shows a flat, filtered account list.
	ModeAccountsOnly
)

// Tree connectors.
const (
	elbow  = "└── "
	tee    = "├── "
	pipe   = "│   "
	indent = "    "
)

// Renderer formats a built tree for the terminal. It never mutates
// the tree; the environment filter only applies to ModeAccountsOnly,
// tree views always show every account with its tag.
type Renderer struct {
	filter Environment
}

func NewRenderer(filter Environment) *Renderer {
	return &Renderer{filter: filter}
}

func (r *Renderer) Render(w io.Writer, tree *Tree, mode Mode) error {
	switch mode {
	case ModeFull:
		r.renderTree(w, tree, false)
		return nil
	case ModeUnitsOnly:
		r.renderTree(w, tree, true)
		return nil
	case ModeAccountsOnly:
		r.renderAccounts(w, tree)
		return nil
	default:
		return errors.Newf("unknown render mode %d", mode)
	}
}

func (r *Renderer) renderTree(w io.Writer, tree *Tree, unitsOnly bool) {
	fmt.Fprintf(w, "\nOrganization ID: %s\n\n", tree.OrganizationID)
	fmt.Fprintf(w, "/ Root OU [ Id: %s ]\n", tree.Root.ID)
	r.renderNode(w, tree.Root, "", unitsOnly)
}

func (r *Renderer) renderNode(w io.Writer, c *Container, prefix string, unitsOnly bool) {
	remaining := len(c.Children)
	if !unitsOnly {
		remaining += len(c.Accounts)
	}

	for _, child := range c.Children {
		remaining--
		fork, childPrefix := connectors(prefix, remaining)

		fmt.Fprintln(w, strings.TrimRight(prefix+pipe, " "))
		fmt.Fprintf(w, "%s%s< %s > | %s\n", prefix, fork, child.ID, child.Name)
		r.renderNode(w, child, childPrefix, unitsOnly)
	}

	if unitsOnly {
		return
	}

	for _, account := range c.Accounts {
		remaining--
		fork, _ := connectors(prefix, remaining)
		fmt.Fprintf(w, "%s%s< %s > | %s [%s]\n", prefix, fork, account.ID, account.Name, tagString(account.Env))
	}
}

// connectors picks the fork drawn before an entry and the prefix for
// its subtree, based on how many sibling entries follow it.
func connectors(prefix string, remaining int) (fork, childPrefix string) {
	if remaining == 0 {
		return elbow, prefix + indent
	}
	return tee, prefix + pipe
}

func (r *Renderer) renderAccounts(w io.Writer, tree *Tree) {
	n := 0
	for _, account := range tree.Accounts() {
		if !account.Env.Matches(r.filter) {
			continue
		}
		n++
		fmt.Fprintf(w, "%02d,%s,%s,%s,%s\n", n, account.Name, account.ID, account.Email, account.Env)
	}
}

func tagString(e Environment) string {
	switch e {
	case EnvProd:
		return color.HiRedString(string(e))
	case EnvNonProd:
		return color.HiGreenString(string(e))
	default:
		return color.HiBlackString(string(e))
	}
}
