package spiflash

// Command opcodes for 256-byte-page SPI NOR chips of the W25X40CL family.
// Values per the Winbond W25X40CL datasheet chapter 8; the Atmel/Adesto
// AT25DF041A and similar parts use the same set.
const (
	opWriteEnable      = 0x06 // WREN, sets the write-enable latch
	opWriteDisable     = 0x04 // WRDI
	opBlockErase4K     = 0x20 // sector erase
	opBlockErase32K    = 0x52
	opBlockErase64K    = 0xD8
	opChipErase        = 0x60
	opStatusRead       = 0x05 // RDSR
	opStatusWrite      = 0x01 // WRSR
	opArrayRead        = 0x0B // fast read, one dummy byte after the address
	opArrayReadLowFreq = 0x03 // plain read, no dummy byte, low clock only
	opSleep            = 0xB9 // deep power-down
	opWake             = 0xAB // release power-down / device id
	opPageProgram      = 0x02 // byte/page program
	opIDRead           = 0x90 // manufacturer + device id
	opUniqueIDRead     = 0x4B // factory-programmed 64-bit unique id
)

// PageSize is the chip's internal program buffer size. A single page-program
// command must not cross a PageSize boundary; see WriteBytes.
const PageSize = 256

// statusBusy is bit 0 of the status register: a write or erase is in
// progress. The other bits are chip specific.
const statusBusy = 0x01
