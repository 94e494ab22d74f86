package workout

import (
	"fmt"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrInvalidArgument     = pkg.ErrInvalidArgument
	ErrNotFound            = pkg.ErrNotFound
	ErrUpstreamUnavailable = pkg.ErrUpstreamUnavailable

	ErrNotATemplate      = fmt.Errorf("%w: not a template", ErrInvalidArgument)
	ErrTemplateNameEmpty = fmt.Errorf("%w: template name empty", ErrInvalidArgument)
	ErrDuplicateID       = fmt.Errorf("%w: duplicate id", ErrInvalidArgument)
	ErrRatingOutOfRange  = fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidArgument, MinRating, MaxRating)
	ErrAlreadyCompleted  = fmt.Errorf("%w: session already completed", ErrInvalidArgument)
)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
