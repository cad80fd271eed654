// Package service implements the admin operations on top of the request
// pipeline. Each service holds the shared pipeline client and the endpoint
// registry; none of them keep per-request state, so all are safe for
// concurrent use. Input structs are validated before any network call.
package service

import (
	"io"

	"github.com/Almaash/community-app-admin/internal/api"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

// Upload is a named file attachment for the multipart endpoints.
type Upload struct {
	Filename string
	Content  io.Reader
}

// check converts a 2xx envelope whose success flag is false into an error,
// keeping the server message verbatim when one was sent.
func check(env *api.Envelope, fallback string) error {
	if env.OK() {
		return nil
	}
	msg := env.Note()
	if msg == "" {
		msg = fallback
	}
	return apperrors.Backend(msg)
}
