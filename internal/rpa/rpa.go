// Package rpa declares the collaborators around report extraction. The
// desktop and browser automation behind them lives outside this module.
package rpa

import (
	"context"
	"errors"

	"github.com/hyperifyio/rireport/internal/report"
)

// Well-known system keys under which credentials are stored.
const (
	SystemAD     = "ad"
	SystemOpus   = "opus"
	SystemPortal = "rollebaseretindgang"
)

// ErrCredentialNotFound is returned when no credential exists for a
// principal and system.
var ErrCredentialNotFound = errors.New("credential not found")

// Credential is a username and secret for one system.
type Credential struct {
	Username string
	Secret   string
}

// CredentialStore looks up and rotates stored credentials. Replace must back
// up the current secret before writing the new one.
type CredentialStore interface {
	Lookup(ctx context.Context, principal, system string) (Credential, error)
	Replace(ctx context.Context, principal, system, secret string) error
}

// Session is an opaque handle to a live ERP or portal session.
type Session interface {
	Close() error
}

// SessionLauncher starts an ERP client session.
type SessionLauncher interface {
	Launch(ctx context.Context, cred Credential) (Session, error)
}

// PortalLoginDriver logs into the payroll portal in a browser.
type PortalLoginDriver interface {
	Login(ctx context.Context, url string, cred Credential) (Session, error)
}

// ReportSource downloads a report and returns its path on disk.
type ReportSource interface {
	Download(ctx context.Context) (string, error)
}

// RecordSink consumes an extracted record set.
type RecordSink interface {
	Consume(ctx context.Context, rs *report.RecordSet) error
}

// PathSource is a ReportSource for a report that is already on disk.
type PathSource string

// Download returns the path unchanged.
func (p PathSource) Download(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(p), nil
}
