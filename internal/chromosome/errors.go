package chromosome

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNullArgument    = errors.New("null argument")
	ErrUnsetGene       = errors.New("gene value unset")
)
