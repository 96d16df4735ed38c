// Package spiflash drives byte-addressable SPI NOR flash chips with 256-byte
// pages (Winbond W25X40CL, Adesto AT25DF041A and similar) over an injected
// Bus. Flash can only be programmed from the erased state: bytes must read
// 0xFF before a write, and only the erase commands set bits back to 1.
package spiflash

import (
	"fmt"
	"io"
	"time"
)

// DefaultBusyTimeout bounds the implicit wait for a pending write or erase.
// A full chip erase can take several seconds on larger parts.
const DefaultBusyTimeout = 10 * time.Second

// Device is one physical flash chip on a Bus. All operations are synchronous
// and strictly sequential; a Device must not be used from multiple goroutines
// at once.
type Device struct {
	bus     Bus
	jedecID uint16

	// BusyTimeout bounds how long a command waits for the chip's busy flag
	// to clear before giving up with ErrNoResponse.
	BusyTimeout time.Duration

	power    powerState
	uniqueID [8]byte
}

// New returns a handle for the chip on bus. jedecID is the expected
// manufacturer+device id from the datasheet (0xEF30 for a Winbond W25X40CL,
// 0x1F44 for an Adesto AT25DF041A); pass 0 to skip the identity check in
// Initialize. The Device does not take ownership of a shared bus.
func New(bus Bus, jedecID uint16) *Device {
	return &Device{bus: bus, jedecID: jedecID, BusyTimeout: DefaultBusyTimeout}
}

// Initialize wakes the chip, verifies its identity when an expected JEDEC id
// was given, and clears global write protection. Wake always runs first
// because the chip's power state survives a soft restart of the controlling
// program.
func (d *Device) Initialize() error {
	if err := d.Wakeup(); err != nil {
		return err
	}
	if d.jedecID != 0 {
		if id := d.DeviceID(); id != d.jedecID {
			return fmt.Errorf("%w: read 0x%04X, expected 0x%04X", ErrUnknownChip, id, d.jedecID)
		}
	}
	// write status register 0: global unprotect
	if err := d.command(opStatusWrite, true); err != nil {
		return err
	}
	d.bus.Transfer(0)
	d.bus.Deselect()
	return nil
}

// Close releases the bus transport when this device's Bus is closeable.
// A bus shared between several chips should be closed by its owner instead.
func (d *Device) Close() error {
	if c, ok := d.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
