package spiflash

// ReadByte reads one byte from addr using the low-frequency read command.
func (d *Device) ReadByte(addr uint32) (byte, error) {
	if err := d.command(opArrayReadLowFreq, false); err != nil {
		return 0, err
	}
	defer d.bus.Deselect()
	d.sendAddress(addr)
	return d.bus.Transfer(0), nil
}

// ReadBytes fills p with len(p) bytes starting at addr. The fast-read command
// streams the whole range in one transaction after a single dummy byte.
func (d *Device) ReadBytes(addr uint32, p []byte) error {
	if err := d.command(opArrayRead, false); err != nil {
		return err
	}
	defer d.bus.Deselect()
	d.sendAddress(addr)
	d.bus.Transfer(0) // dummy
	for i := range p {
		p[i] = d.bus.Transfer(0)
	}
	return nil
}

// RegionIsEmpty reports whether every byte in [addr, addr+length) is erased
// (0xFF), i.e. whether the region can be programmed without erasing first.
func (d *Device) RegionIsEmpty(addr uint32, length int) (bool, error) {
	buf := make([]byte, length)
	if err := d.ReadBytes(addr, buf); err != nil {
		return false, err
	}
	for _, b := range buf {
		if b != 0xFF {
			return false, nil
		}
	}
	return true, nil
}
