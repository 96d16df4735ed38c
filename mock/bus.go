// Package mock provides a simulated SPI NOR flash chip for testing the driver
// without hardware. The model keeps a memory array with real flash semantics:
// programming only clears bits, erasing sets a whole region back to 0xFF, and
// a page-program command that runs past a 256-byte page boundary wraps around
// and corrupts the start of its own page, exactly like the real part.
package mock

import (
	"fmt"

	"github.com/rabidaudio/spiflash"
)

var _ spiflash.Bus = (*Bus)(nil)

// opcode subset the model implements, matching the W25X40CL family
const (
	opWriteEnable      = 0x06
	opWriteDisable     = 0x04
	opBlockErase4K     = 0x20
	opBlockErase32K    = 0x52
	opBlockErase64K    = 0xD8
	opChipErase        = 0x60
	opStatusRead       = 0x05
	opStatusWrite      = 0x01
	opArrayRead        = 0x0B
	opArrayReadLowFreq = 0x03
	opSleep            = 0xB9
	opWake             = 0xAB
	opPageProgram      = 0x02
	opIDRead           = 0x90
	opUniqueIDRead     = 0x4B

	statusBusy = 0x01
)

const pageSize = 256

// Bus simulates one flash chip wired to a dedicated chip select.
type Bus struct {
	Mem      []byte
	ID       uint16
	UniqueID [8]byte
	Status   byte

	// IDSequence, when non-empty, scripts the value returned by successive
	// id-read transactions (the last entry repeats). Used to simulate a
	// flapping or absent chip.
	IDSequence []uint16

	// Float simulates an empty bus: every byte clocks in as 0xFF and nothing
	// is committed, as if no chip were attached at all.
	Float bool

	// BusyPolls is how many more status reads will report the busy bit set.
	// Program and erase commits bump it so the driver has to wait.
	BusyPolls int

	// Asleep mirrors the chip's power-down state. Exported so tests can model
	// a chip left asleep by a previous run.
	Asleep bool

	// Transactions records the MOSI bytes of every completed select/deselect
	// window, status polls included. StatusPolls counts status reads.
	Transactions [][]byte
	StatusPolls  int

	selected bool
	wel      bool
	idIndex  int
	cmd      []byte
}

// New returns a fully erased simulated chip of the given size reporting
// the W25X40CL JEDEC id.
func New(size int) *Bus {
	m := &Bus{
		Mem:      make([]byte, size),
		ID:       0xEF30,
		UniqueID: [8]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04},
	}
	for i := range m.Mem {
		m.Mem[i] = 0xFF
	}
	return m
}

func (m *Bus) Select() {
	if m.selected {
		panic("mock: select while already selected")
	}
	m.selected = true
	m.cmd = m.cmd[:0]
}

func (m *Bus) Deselect() {
	if !m.selected {
		panic("mock: deselect while not selected")
	}
	m.commit()
	tx := make([]byte, len(m.cmd))
	copy(tx, m.cmd)
	m.Transactions = append(m.Transactions, tx)
	m.selected = false
}

func (m *Bus) Transfer(out byte) byte {
	if !m.selected {
		panic("mock: transfer while not selected")
	}
	m.cmd = append(m.cmd, out)
	if m.Float {
		return 0xFF
	}
	return m.respond()
}

// respond produces the MISO byte for the byte just clocked in. pos 0 is the
// opcode itself; the chip drives nothing meaningful during that byte.
func (m *Bus) respond() byte {
	op := m.cmd[0]
	pos := len(m.cmd) - 1
	if m.Asleep && op != opWake && op != opIDRead {
		// power-down: output floats
		return 0xFF
	}
	switch op {
	case opStatusRead:
		if pos == 0 {
			return 0
		}
		m.StatusPolls++
		if m.BusyPolls > 0 {
			m.BusyPolls--
			return m.Status | statusBusy
		}
		return m.Status &^ statusBusy
	case opIDRead:
		id := m.currentID()
		switch pos {
		case 1:
			return byte(id >> 8)
		case 2:
			return byte(id)
		}
		return 0
	case opUniqueIDRead:
		// opcode, 4 don't-care bytes, then the 8 id bytes
		if pos >= 5 && pos < 13 {
			return m.UniqueID[pos-5]
		}
		return 0
	case opArrayReadLowFreq:
		if pos >= 4 {
			return m.readMem(pos - 4)
		}
		return 0
	case opArrayRead:
		// one dummy byte after the address
		if pos >= 5 {
			return m.readMem(pos - 5)
		}
		return 0
	}
	return 0
}

func (m *Bus) currentID() uint16 {
	if len(m.IDSequence) == 0 {
		return m.ID
	}
	i := m.idIndex
	if i >= len(m.IDSequence) {
		i = len(m.IDSequence) - 1
	}
	return m.IDSequence[i]
}

func (m *Bus) addr() uint32 {
	return uint32(m.cmd[1])<<16 | uint32(m.cmd[2])<<8 | uint32(m.cmd[3])
}

func (m *Bus) readMem(offset int) byte {
	a := int(m.addr()) + offset
	if a >= len(m.Mem) {
		return 0xFF
	}
	return m.Mem[a]
}

// commit applies the side effects of the transaction at deselect time, the
// point where the real chip latches a command.
func (m *Bus) commit() {
	if m.Float || len(m.cmd) == 0 {
		return
	}
	op := m.cmd[0]
	if m.Asleep && op != opWake {
		return
	}
	switch op {
	case opWriteEnable:
		m.wel = true
	case opWriteDisable:
		m.wel = false
	case opStatusWrite:
		if len(m.cmd) > 1 {
			m.Status = m.cmd[1] &^ statusBusy
		}
	case opSleep:
		m.Asleep = true
	case opWake:
		m.Asleep = false
	case opIDRead:
		if len(m.IDSequence) > 0 {
			m.idIndex++
		}
	case opPageProgram:
		if !m.wel || len(m.cmd) < 5 {
			return
		}
		m.program(m.addr(), m.cmd[4:])
		m.wel = false
		m.BusyPolls += 2
	case opChipErase:
		if !m.wel {
			return
		}
		m.erase(0, len(m.Mem))
		m.wel = false
		m.BusyPolls += 4
	case opBlockErase4K:
		m.blockErase(4 * 1024)
	case opBlockErase32K:
		m.blockErase(32 * 1024)
	case opBlockErase64K:
		m.blockErase(64 * 1024)
	}
}

// program emulates the chip's internal page buffer: the low address byte
// wraps within the 256-byte page, so a command running past the boundary
// overwrites the start of its own page.
func (m *Bus) program(addr uint32, data []byte) {
	for i, b := range data {
		a := (addr &^ (pageSize - 1)) | ((addr + uint32(i)) % pageSize)
		if int(a) < len(m.Mem) {
			m.Mem[a] &= b // programming only clears bits
		}
	}
}

func (m *Bus) blockErase(size int) {
	if !m.wel || len(m.cmd) < 4 {
		return
	}
	start := int(m.addr()) &^ (size - 1)
	m.erase(start, size)
	m.wel = false
	m.BusyPolls += 3
}

func (m *Bus) erase(start, length int) {
	end := start + length
	if end > len(m.Mem) {
		end = len(m.Mem)
	}
	for i := start; i < end; i++ {
		m.Mem[i] = 0xFF
	}
}

// Dump is a debugging aid: the hex contents of [addr, addr+length).
func (m *Bus) Dump(addr uint32, length int) string {
	return fmt.Sprintf("% X", m.Mem[addr:int(addr)+length])
}
