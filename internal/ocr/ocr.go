// Package ocr defines the abstraction for the external text-recognition
// capability. The interface is intentionally small so engines can be backed
// by native libraries or remote services without leaking provider-specific
// concerns into the handlers.
package ocr

import "context"

// Engine is the text-recognition provider contract: one image in, the
// concatenated recognized text out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) (string, error)
}
