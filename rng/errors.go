package rng

import "errors"

// ErrInvalidRange is returned when a requested range is empty or inverted,
// e.g. an exclusive upper bound of zero or max < min.
var ErrInvalidRange = errors.New("invalid range")

// ErrBufferBounds is returned when an offset and length do not describe a
// region inside the destination.
var ErrBufferBounds = errors.New("offset or length out of bounds")

// ErrUnsupported is returned when an algorithm lacks the capability an
// operation needs, like scalar seeding, jumping or default construction.
var ErrUnsupported = errors.New("unsupported operation")
