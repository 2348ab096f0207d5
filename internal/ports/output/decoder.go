package output

import "context"

// Decoder turns a captured still image into a participant token. Decoding is
// an external collaborator concern; this core only consumes its output.
type Decoder interface {
	// Decode returns the decoded token and found=true, or found=false when
	// the image contains no readable symbol. err is reserved for decoder
	// failures, not for absent symbols.
	Decode(ctx context.Context, image []byte) (token string, found bool, err error)
}
