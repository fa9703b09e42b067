package port

import "context"

// TransporterRegistry resolves a transporter identifier against the
// integration master mapping. A false result is a validation rejection;
// a non-nil error is an infrastructure failure.
type TransporterRegistry interface {
	Resolve(ctx context.Context, transporterID string) (bool, error)
}
