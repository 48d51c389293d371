// services/hal/internal/halerr/errors.go
package halerr

import "errors"

var (
	// Claims
	ErrUnknownPin = errors.New("unknown_pin")
	ErrPinInUse   = errors.New("pin_in_use")
	ErrNotOwner   = errors.New("not_owner")

	// Buses
	ErrUnknownBus = errors.New("unknown_bus")

	// Interrupts
	ErrNoIRQ = errors.New("no_irq")
)
