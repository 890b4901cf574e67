package orderbook

import "errors"

// ErrMissingPartial is returned when an Update frame is applied to a book
// that has never received a Partial snapshot.
var ErrMissingPartial = errors.New("orderbook: update applied before partial snapshot")

// ErrIncorrectChecksum is returned when the locally computed checksum
// disagrees with the checksum the exchange attached to the frame. The book
// retains whatever state the apply produced; callers should discard it.
var ErrIncorrectChecksum = errors.New("orderbook: local checksum does not match server checksum")
