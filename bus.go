package spiflash

// Bus is a synchronous full-duplex serial connection to one flash chip,
// including its chip-select line. Select and Deselect bracket every
// transaction; the driver never leaves the bus selected between public calls.
//
// A Bus is set up for a single chip with that chip's clock settings. The
// underlying wires may be shared between devices, but a caller must not
// interleave another device's transaction inside a Select/Deselect window.
type Bus interface {
	// Select asserts chip select, applying the device's bus settings.
	Select()
	// Deselect releases chip select, ending the transaction.
	Deselect()
	// Transfer clocks out one byte and returns the byte clocked in.
	Transfer(out byte) (in byte)
}
