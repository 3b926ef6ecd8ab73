// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package resolve narrows a set of candidate identifiers down to exactly one.
// It implements the selection rules shared by cluster and DB user resolution:
// an explicit hint must match exactly, and without a hint a lone candidate is
// picked implicitly. Any other situation is a typed failure carrying the full
// candidate list so the user can copy-paste a correct value.
//
// Resolution is a pure function of its inputs. The package never touches
// flags, environment variables, or the network.
package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// Labels for the two resolution passes. They appear verbatim in error
// messages, so changing them changes the CLI's error contract.
const (
	LabelDB     = "DB"
	LabelDBUser = "DB user"
)

// Resolve picks exactly one identifier from candidates.
//
// An empty hint means "unset". Candidates keep the order the provider
// returned them in; no sorting or normalization is applied, and hint matching
// is exact and case-sensitive.
func Resolve(hint string, candidates []string, label string) (string, error) {
	if len(candidates) == 0 {
		return "", &Error{Kind: ErrNotFound, Label: label}
	}

	if hint != "" {
		for _, id := range candidates {
			if id == hint {
				return id, nil
			}
		}
		return "", &Error{
			Kind:      ErrNoMatch,
			Label:     label,
			Hint:      hint,
			Available: candidates,
		}
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return "", &Error{
		Kind:      ErrAmbiguous,
		Label:     label,
		Available: candidates,
	}
}

// ErrKind discriminates the closed set of resolution failures.
type ErrKind string

const (
	// ErrNotFound means the candidate set was empty.
	ErrNotFound ErrKind = "not_found"
	// ErrNoMatch means a hint was given but matched no candidate.
	ErrNoMatch ErrKind = "no_match"
	// ErrAmbiguous means no hint was given and more than one candidate exists.
	ErrAmbiguous ErrKind = "ambiguous"
)

// Error is a resolution failure. Kind selects the variant; Label, Hint and
// Available are the variant payloads. The rendered messages are an external
// contract and must not change shape.
type Error struct {
	Kind      ErrKind
	Label     string
	Hint      string
	Available []string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNoMatch:
		return fmt.Sprintf("No %s matched %q, available ids are %s", e.Label, e.Hint, quoteList(e.Available))
	case ErrAmbiguous:
		return fmt.Sprintf("Multiple %ss found, please specify one of %s", e.Label, quoteList(e.Available))
	default:
		return fmt.Sprintf("No %ss found", e.Label)
	}
}

// quoteList renders ids as ["a", "b"], preserving order.
func quoteList(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = strconv.Quote(id)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
