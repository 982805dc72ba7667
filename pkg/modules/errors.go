package modules

import "errors"

var (
	ErrInvalidFile     = errors.New("modules: invalid messages file")
	ErrDuplicateModule = errors.New("modules: duplicate module path")
)
