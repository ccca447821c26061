package extract

import "errors"

// Fatal conditions. Both abort the current extraction call; the front-end
// reports them and moves on. Metadata failures and individual embedded-image
// decode failures are absorbed where they occur and never reach here.
var (
	// ErrFileNotFound means the input path does not reference a readable
	// file. Raised before any toolkit call.
	ErrFileNotFound = errors.New("file not found")

	// ErrDocumentOpen means the bytes are not a parseable PDF (corrupt,
	// encrypted or not a PDF at all).
	ErrDocumentOpen = errors.New("cannot open document")
)
