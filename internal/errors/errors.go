// Package errors defines typed errors with categories for user-friendly reporting.
// Remote failures from AWS are wrapped here with a machine-readable kind and a
// stable message prefix; the underlying SDK error is appended verbatim and
// never reinterpreted or retried.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// ClusterLookup indicates the DescribeDBClusters call failed.
	ClusterLookup Kind = "cluster_lookup"
	// SecretLookup indicates the ListSecrets call failed.
	SecretLookup Kind = "secret_lookup"
	// StatementExecution indicates the ExecuteStatement call failed.
	StatementExecution Kind = "statement_execution"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

// Error renders the message with the underlying cause appended. The kind is
// kept for matching, not display.
func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
