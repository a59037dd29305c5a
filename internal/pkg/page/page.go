package page

import "errors"

var ErrInvalidPage = errors.New("invalid pagination parameters")

const DefaultLimit = 20

// Spec is an offset/limit window over an ordered result set.
type Spec struct {
	Offset int32
	Limit  int32
}

// New builds a Spec from optional from/size request parameters.
// When either parameter is absent the default window {0, DefaultLimit} is
// used. Negative from and non-positive size are rejected. The offset is the
// raw from value; no page-index rounding is applied.
func New(from, size *int) (Spec, error) {
	if from == nil || size == nil {
		return Spec{Offset: 0, Limit: DefaultLimit}, nil
	}
	if *from < 0 || *size <= 0 {
		return Spec{}, ErrInvalidPage
	}
	return Spec{Offset: int32(*from), Limit: int32(*size)}, nil
}
