package org

import "strings"

// Rule maps a display-name substring to an environment. Rules are
// evaluated in order, first match wins, so more specific patterns
// ("-non-prod") must precede the patterns they contain ("-prod").
type Rule struct {
	Pattern string
	Env     Environment
}

// DefaultRules is the built-in naming convention: a "-non-prod" infix
// marks NON-PROD, a "-prod" infix marks PROD, anything else is UNKNOWN.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: "-non-prod", Env: EnvNonProd},
		{Pattern: "-prod", Env: EnvProd},
	}
}

// Classifier tags accounts by matching their display name against an
// ordered rule set.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the environment of the first rule whose pattern is
// a substring of name, or EnvUnknown. It is total: every name,
// including the empty string, yields exactly one tag.
func (c *Classifier) Classify(name string) Environment {
	for _, r := range c.rules {
		if r.Pattern == "" {
			continue
		}
		if strings.Contains(name, r.Pattern) {
			return r.Env
		}
	}
	return EnvUnknown
}
