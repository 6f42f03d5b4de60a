package export

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrRenderFailed      = errors.New("failed to render export")
)
