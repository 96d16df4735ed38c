package spiflash

// powerState tracks which commands the chip will currently answer. A fresh
// handle starts at powerUnknown because the chip keeps its state across a
// soft restart of the controlling program; Initialize wakes it explicitly.
type powerState int

const (
	powerUnknown powerState = iota
	powerAwake
	powerAsleep
)

// Sleep puts the chip into deep power-down. Until Wakeup is called the chip
// answers only the wake and identity-read opcodes; every other operation on
// this handle returns ErrAsleep.
func (d *Device) Sleep() error {
	if err := d.command(opSleep, false); err != nil {
		return err
	}
	d.bus.Deselect()
	d.power = powerAsleep
	return nil
}

// Wakeup releases deep power-down. It skips the usual busy-wait, since a
// sleeping chip does not answer status reads. Calling it on a chip that is
// already awake is harmless.
func (d *Device) Wakeup() error {
	if err := d.command(opWake, false); err != nil {
		return err
	}
	d.bus.Deselect()
	d.power = powerAwake
	return nil
}
