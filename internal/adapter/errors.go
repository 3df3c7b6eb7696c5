package adapter

import "errors"

var (
	ErrNoFileProvided = errors.New("no file provided")
	ErrUploadFailed   = errors.New("image upload failed")
)
