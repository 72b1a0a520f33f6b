package memspace

import "errors"

var (
	ErrSizeInvalid      = errors.New("allocation size must be greater than zero")
	ErrCapacityExceeded = errors.New("the allocation would exceed the space capacity")
	ErrCapacityRange    = errors.New("capacity exceeds the maximum safe space capacity")
	ErrOffsetRange      = errors.New("the offset is outside the block")
	ErrLengthRange      = errors.New("the region length must be greater than zero")
	ErrRegionRange      = errors.New("the region extends past the end of the block")
	ErrNameBound        = errors.New("the variable name is already bound")
)
