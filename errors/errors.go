package errors

import (
	"github.com/pkg/errors"
)

var (
	NotFound                = errors.New("not found")
	ProbesExhausted         = errors.New("probe sequence exhausted without a free slot")
	ModifiedDuringIteration = errors.New("map was resized or cleared during iteration")
	Inconsistent            = errors.New("map is inconsistent")
)
