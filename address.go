package spiflash

import "encoding/binary"

// encodeAddress produces the 24-bit wire form of addr: three bytes, most
// significant first. Bits above 23 are never transmitted.
func encodeAddress(addr uint32) [3]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], addr)
	return [3]byte{b[1], b[2], b[3]}
}

func (d *Device) sendAddress(addr uint32) {
	a := encodeAddress(addr)
	d.bus.Transfer(a[0])
	d.bus.Transfer(a[1])
	d.bus.Transfer(a[2])
}
