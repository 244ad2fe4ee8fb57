package port

import "context"

// EmailSender delivers admin notifications. Failures are logged by callers
// and never fail the triggering request.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
