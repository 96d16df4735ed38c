package spiflash

import "encoding/binary"

// DeviceID returns the manufacturer and device id word, e.g. 0xEF30 for a
// Winbond W25X40CL. It talks to the chip directly, with no write-enable and
// no busy-wait: this is the one read the chip still answers while asleep, and
// Found relies on it never blocking on an absent chip.
func (d *Device) DeviceID() uint16 {
	d.bus.Select()
	defer d.bus.Deselect()
	d.bus.Transfer(opIDRead)
	var b [2]byte
	b[0] = d.bus.Transfer(0)
	b[1] = d.bus.Transfer(0)
	return binary.BigEndian.Uint16(b[:])
}

// UniqueID returns the chip's factory-programmed 64-bit unique id, read fresh
// from the chip on every call.
func (d *Device) UniqueID() ([8]byte, error) {
	if err := d.command(opUniqueIDRead, false); err != nil {
		return [8]byte{}, err
	}
	defer d.bus.Deselect()
	for i := 0; i < 4; i++ {
		d.bus.Transfer(0) // don't care
	}
	for i := range d.uniqueID {
		d.uniqueID[i] = d.bus.Transfer(0)
	}
	return d.uniqueID, nil
}

// Found reports whether a live flash chip answers on the bus. The id is
// sampled ten times and must be stable: a floating data line reads 0xFFFF, a
// grounded one reads 0x0000, and electrical noise flaps between values. The
// chip is woken first in case a previous run left it in power-down.
func (d *Device) Found() bool {
	if err := d.Wakeup(); err != nil {
		return false
	}
	var first uint16
	for i := 0; i < 10; i++ {
		id := d.DeviceID()
		if id == 0x0000 || id == 0xFFFF {
			return false
		}
		if i == 0 {
			first = id
		} else if id != first {
			return false
		}
	}
	return true
}
