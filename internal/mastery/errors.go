package mastery

import "errors"

// ErrEmptyCardID is returned when an operation needs a card ID and got a blank one.
var ErrEmptyCardID = errors.New("mastery: empty card id")
