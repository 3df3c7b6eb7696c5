package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

// ImageUploader normalizes incoming image uploads by pushing them to an
// external image host and returning the hosted URLs.
type ImageUploader interface {
	// UploadImage uploads a single file and returns its hosted URL.
	// Returns ErrUploadFailed when the host rejects the upload.
	UploadImage(ctx context.Context, file models.File) (string, error)

	// UploadImages uploads several files concurrently and returns their
	// hosted URLs in the same order as the input. The batch is
	// all-or-nothing: the first failure cancels the remaining uploads
	// and the whole call fails.
	UploadImages(ctx context.Context, files []models.File) ([]string, error)
}
