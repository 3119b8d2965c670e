package primemap

import (
	"github.com/xaionaro-go/primemap/errors"
)

var (
	NotFound                = errors.NotFound
	ProbesExhausted         = errors.ProbesExhausted
	ModifiedDuringIteration = errors.ModifiedDuringIteration
	Inconsistent            = errors.Inconsistent
)
