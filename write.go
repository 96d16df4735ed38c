package spiflash

// WriteByte programs a single byte at addr. The destination must have been
// erased (0xFF) first: programming can only clear bits.
func (d *Device) WriteByte(addr uint32, b byte) error {
	if err := d.command(opPageProgram, true); err != nil {
		return err
	}
	d.sendAddress(addr)
	d.bus.Transfer(b)
	d.bus.Deselect()
	return nil
}

// WriteBytes programs p starting at addr, splitting the data so that no
// single page-program command crosses a 256-byte page boundary. The chip's
// internal program buffer wraps at page boundaries: one command spanning two
// pages would wrap around and overwrite the start of the first page instead
// of continuing into the second. The destination range must be erased first.
func (d *Device) WriteBytes(addr uint32, p []byte) error {
	// the first chunk stops at the page boundary, later chunks are whole pages
	maxBytes := PageSize - int(addr%PageSize)
	for len(p) > 0 {
		n := len(p)
		if n > maxBytes {
			n = maxBytes
		}
		if err := d.command(opPageProgram, true); err != nil {
			return err
		}
		d.sendAddress(addr)
		for _, b := range p[:n] {
			d.bus.Transfer(b)
		}
		d.bus.Deselect()

		addr += uint32(n)
		p = p[n:]
		maxBytes = PageSize
	}
	return nil
}
