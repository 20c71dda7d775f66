package entity

import "fmt"

// CoordinateError ties a board failure to the cell that caused it.
type CoordinateError struct {
	Err   error
	Coord Coordinate
}

func (that *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s", that.Err, that.Coord.Label())
}

func (that *CoordinateError) Unwrap() error {
	return that.Err
}
