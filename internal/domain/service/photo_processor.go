package service

// ProcessedPhoto is the result of validating and normalizing an upload.
type ProcessedPhoto struct {
	Data     []byte // re-encoded payload, fits within the configured bounds
	MIMEType string
	Width    int
	Height   int
}

// PhotoProcessor validates an uploaded attachment and downscales it to the
// configured maximum dimensions, preserving aspect ratio. Validation
// failures are reported before anything touches the store.
type PhotoProcessor interface {
	Process(name, mimeType string, data []byte) (*ProcessedPhoto, error)
}
