package spiflash

import "time"

const busyPollInterval = 50 * time.Microsecond

// command issues op and leaves the bus selected so the caller can transfer
// address and data bytes; the caller must Deselect afterwards. A write-class
// opcode is prefixed by a complete write-enable transaction, and every opcode
// except wake first waits for any pending write or erase to finish.
func (d *Device) command(op byte, isWrite bool) error {
	if d.power == powerAsleep && op != opWake {
		return ErrAsleep
	}
	if isWrite {
		if err := d.command(opWriteEnable, false); err != nil {
			return err
		}
		d.bus.Deselect()
	}
	// A sleeping chip does not answer status reads, so wake skips the wait.
	if op != opWake {
		if err := d.waitIdle(); err != nil {
			return err
		}
	}
	d.bus.Select()
	d.bus.Transfer(op)
	return nil
}

// waitIdle polls the status register until the busy bit clears. The wait is
// bounded: with no chip attached the data line floats high and the busy bit
// would otherwise read set forever.
func (d *Device) waitIdle() error {
	deadline := time.Now().Add(d.BusyTimeout)
	for d.readStatus()&statusBusy != 0 {
		if time.Now().After(deadline) {
			return ErrNoResponse
		}
		time.Sleep(busyPollInterval)
	}
	return nil
}

func (d *Device) readStatus() byte {
	d.bus.Select()
	defer d.bus.Deselect()
	d.bus.Transfer(opStatusRead)
	return d.bus.Transfer(0)
}

// ReadStatus returns the chip's status register. Bit 0 is the busy flag; the
// remaining bits are chip specific.
func (d *Device) ReadStatus() (byte, error) {
	if d.power == powerAsleep {
		return 0, ErrAsleep
	}
	return d.readStatus(), nil
}

// Busy reports whether a write or erase is still in progress. Erases run
// asynchronously inside the chip, so a caller wanting explicit completion
// should poll this; any other command blocks on it implicitly.
func (d *Device) Busy() (bool, error) {
	status, err := d.ReadStatus()
	return status&statusBusy != 0, err
}
