// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract maps markup fragments to sparse named-value fields using
// declarative selector rules. One generic routine interprets a rule table,
// so adding a field to a page type is a data change, not a code change.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-pipeline/pkg/types"
)

// Mode selects how a rule pulls its value from the matched element.
type Mode int

const (
	// ModeText takes the element's text, whitespace-collapsed and trimmed.
	ModeText Mode = iota

	// ModeAttr takes a named attribute verbatim.
	ModeAttr

	// ModeLink takes a named attribute and prefixes it with a fixed base to
	// form an absolute link.
	ModeLink
)

// Rule binds one output field to a selector and an extraction mode.
type Rule struct {
	Field    string
	Selector string
	Mode     Mode

	// Attr is the attribute read by ModeAttr and ModeLink rules.
	Attr string

	// Base is the prefix ModeLink rules prepend to the attribute value.
	Base string
}

// Text builds a rule that extracts cleaned element text.
func Text(field, selector string) Rule {
	return Rule{Field: field, Selector: selector, Mode: ModeText}
}

// Attr builds a rule that extracts a raw attribute value.
func Attr(field, selector, attr string) Rule {
	return Rule{Field: field, Selector: selector, Mode: ModeAttr, Attr: attr}
}

// Link builds a rule that extracts an attribute and composes it with base
// into an absolute link.
func Link(field, selector, base, attr string) Rule {
	return Rule{Field: field, Selector: selector, Mode: ModeLink, Attr: attr, Base: base}
}

// Extract applies each rule to the fragment and collects the fields that
// matched. A rule whose selector finds nothing, whose attribute is missing,
// or whose cleaned value is empty is skipped; one bad rule never stops the
// rest. The returned map holds no empty values.
func Extract(fragment *goquery.Selection, rules []Rule) types.Fields {
	fields := make(types.Fields)
	for _, rule := range rules {
		match := fragment.Find(rule.Selector).First()
		if match.Length() == 0 {
			continue
		}

		var value string
		switch rule.Mode {
		case ModeText:
			value = CleanText(match.Text())
		case ModeAttr:
			raw, ok := match.Attr(rule.Attr)
			if !ok {
				continue
			}
			value = strings.TrimSpace(raw)
		case ModeLink:
			raw, ok := match.Attr(rule.Attr)
			if !ok || strings.TrimSpace(raw) == "" {
				continue
			}
			value = rule.Base + strings.TrimSpace(raw)
		}

		if value == "" {
			continue
		}
		fields[rule.Field] = value
	}
	return fields
}

// CleanText collapses runs of whitespace into single spaces and trims the ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
