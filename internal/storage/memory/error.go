package memory

import "errors"

var (
	ErrDatesBlocked = errors.New("dates already blocked")
	ErrDuplicateID  = errors.New("booking id already stored")
)
