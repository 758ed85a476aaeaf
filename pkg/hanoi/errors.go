package hanoi

import (
	"fmt"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// EmptySourceError is returned when a move starts from a rod with no disk.
type EmptySourceError struct {
	Rod Rod
}

func (e *EmptySourceError) Error() string {
	return fmt.Sprintf("no disk to move from rod %d", e.Rod)
}

// Code returns [errors.ErrCodeEmptySource].
func (e *EmptySourceError) Code() errors.Code { return errors.ErrCodeEmptySource }

// IllegalPlacementError is returned when a move would put Disk on the smaller Onto.
type IllegalPlacementError struct {
	Disk Disk
	Onto Disk
}

func (e *IllegalPlacementError) Error() string {
	return fmt.Sprintf("disk %d is bigger than disk %d", e.Disk, e.Onto)
}

// Code returns [errors.ErrCodeIllegalPlacement].
func (e *IllegalPlacementError) Code() errors.Code { return errors.ErrCodeIllegalPlacement }

// RodError is returned when a move names a rod outside 0..2.
type RodError struct {
	Rod Rod
}

func (e *RodError) Error() string {
	return fmt.Sprintf("invalid rod %d (must be 0, 1 or 2)", e.Rod)
}

// Code returns [errors.ErrCodeInvalidRod].
func (e *RodError) Code() errors.Code { return errors.ErrCodeInvalidRod }
