package rating

import "errors"

// Rating domain errors
var (
	ErrRatingNotFound = errors.New("no rating from this employee for this product")
	ErrUnknownProduct = errors.New("cannot rate an unknown product")
)
