package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const uploadFolder = "uploads"

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedMedia
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   uploadFolder,
		PublicID: "file-" + uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, locator string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: uploadFolder + "/" + publicIDFromURL(locator),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	// "not found" means the blob is already gone, which is fine
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", result.Result)
	}
	return nil
}

// publicIDFromURL recovers the public id from a delivery URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v1/uploads/file-abc.png -> file-abc
func publicIDFromURL(locator string) string {
	base := path.Base(locator)
	return strings.TrimSuffix(base, path.Ext(base))
}
