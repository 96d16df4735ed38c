// Package rpibus implements spiflash.Bus on a Raspberry Pi using the
// hardware SPI controller. Chip select is driven through an ordinary GPIO pin
// rather than the controller's CE lines: the BCM2835 toggles CE around every
// exchange, while the flash protocol needs the select held low across a whole
// multi-byte command.
package rpibus

import (
	rpio "github.com/stianeikeland/go-rpio/v4"
)

// The W25X40CL clocks up to 104 MHz; stock Pi wiring is happier well below.
const DefaultSpeed = 8_000_000 // 8 MHz

type Bus struct {
	dev rpio.SpiDev
	cs  rpio.Pin
}

// Open maps the bus on SPI0 with the given BCM pin as chip select.
func Open(csPin uint8) (*Bus, error) {
	return OpenDevice(rpio.Spi0, csPin, DefaultSpeed)
}

func OpenDevice(dev rpio.SpiDev, csPin uint8, speed int) (bus *Bus, err error) {
	err = rpio.Open()
	if err != nil {
		return
	}
	err = rpio.SpiBegin(dev)
	if err != nil {
		return
	}
	rpio.SpiSpeed(speed)
	cs := rpio.Pin(csPin)
	cs.Output()
	cs.High() // idle deselected
	bus = &Bus{dev: dev, cs: cs}
	return
}

func (b *Bus) Select()   { b.cs.Low() }
func (b *Bus) Deselect() { b.cs.High() }

func (b *Bus) Transfer(out byte) byte {
	buf := []byte{out}
	rpio.SpiExchange(buf)
	return buf[0]
}

func (b *Bus) Close() error {
	b.cs.High()
	rpio.SpiEnd(b.dev)
	return rpio.Close()
}
