// Package media uploads post images to the external blob store and deletes
// them by locator.
package media

import (
	"context"
	"errors"
	"io"
)

// ErrUnsupportedMedia rejects non-image uploads before any network call.
var ErrUnsupportedMedia = errors.New("invalid file type, only images are allowed")

type Store interface {
	// Upload pushes the file to the blob store and returns a stable URL.
	Upload(ctx context.Context, file io.Reader, contentType string) (string, error)
	// Delete removes the blob behind a locator. Deleting a locator that is
	// already gone is not an error.
	Delete(ctx context.Context, locator string) error
}
