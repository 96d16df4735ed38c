package spiflash

import "fmt"

var (
	// ErrNoResponse means the busy flag never cleared within BusyTimeout.
	// With no chip attached, or a chip left in power-down, the data line
	// floats high and the busy bit reads as permanently set.
	ErrNoResponse = fmt.Errorf("spiflash: chip not responding")

	// ErrUnknownChip means the JEDEC id read back did not match the one the
	// device was constructed with.
	ErrUnknownChip = fmt.Errorf("spiflash: unexpected JEDEC id")

	// ErrAsleep means a command other than wake or identity-read was issued
	// while the chip is in power-down mode. Call Wakeup first.
	ErrAsleep = fmt.Errorf("spiflash: chip is asleep")
)
