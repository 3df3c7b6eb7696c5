package models

// File is an in-memory upload descriptor: the original filename plus the raw
// content. Files are forwarded to the external image host straight from
// memory; nothing is staged on disk.
type File struct {
	// Name is the client-supplied original filename. It never influences
	// where the content ends up.
	Name string

	// Content is the raw file payload.
	Content []byte
}
