package spiflash

// ChipErase starts erasing the entire array back to 0xFF. It returns as soon
// as the command is issued: the erase runs inside the chip and can take
// several seconds. The next command on this device blocks until it finishes;
// poll Busy for explicit progress.
func (d *Device) ChipErase() error {
	if err := d.command(opChipErase, true); err != nil {
		return err
	}
	d.bus.Deselect()
	return nil
}

// BlockErase4K erases the 4 KB block containing addr. Non-blocking, like
// ChipErase.
func (d *Device) BlockErase4K(addr uint32) error {
	return d.blockErase(opBlockErase4K, addr)
}

// BlockErase32K erases the 32 KB block containing addr.
func (d *Device) BlockErase32K(addr uint32) error {
	return d.blockErase(opBlockErase32K, addr)
}

// BlockErase64K erases the 64 KB block containing addr.
func (d *Device) BlockErase64K(addr uint32) error {
	return d.blockErase(opBlockErase64K, addr)
}

func (d *Device) blockErase(op byte, addr uint32) error {
	if err := d.command(op, true); err != nil {
		return err
	}
	d.sendAddress(addr)
	d.bus.Deselect()
	return nil
}
