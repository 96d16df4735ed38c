package spiflash_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rabidaudio/spiflash"
	"github.com/rabidaudio/spiflash/mock"
)

// opcodes as they appear on the wire
const (
	opWriteEnable = 0x06
	opStatusRead  = 0x05
	opChipErase   = 0x60
	opPageProgram = 0x02
)

func failIfErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func newTestDevice(size int) (*mock.Bus, *spiflash.Device) {
	m := mock.New(size)
	d := spiflash.New(m, 0)
	// keep the no-response failure mode fast in tests
	d.BusyTimeout = 50 * time.Millisecond
	return m, d
}

// opcodeOrder returns the index of each transaction starting with op.
func opcodeOrder(m *mock.Bus, op byte) (indexes []int) {
	for i, tx := range m.Transactions {
		if len(tx) > 0 && tx[0] == op {
			indexes = append(indexes, i)
		}
	}
	return
}

func TestWriteEnablePrecedesWriteClassCommands(t *testing.T) {
	m, d := newTestDevice(64 * 1024)

	failIfErr(t, d.WriteByte(0x10, 0xAA))

	wren := opcodeOrder(m, opWriteEnable)
	prog := opcodeOrder(m, opPageProgram)
	assert.Len(t, wren, 1)
	assert.Len(t, prog, 1)
	assert.Less(t, wren[0], prog[0])

	failIfErr(t, d.ChipErase())

	wren = opcodeOrder(m, opWriteEnable)
	erase := opcodeOrder(m, opChipErase)
	assert.Len(t, wren, 2)
	assert.Len(t, erase, 1)
	assert.Less(t, wren[1], erase[0])
}

func TestCommandWaitsForPendingOperation(t *testing.T) {
	m, d := newTestDevice(64 * 1024)

	// pretend an erase is still running inside the chip
	m.BusyPolls = 3

	failIfErr(t, d.WriteByte(0x20, 0x42))
	// 3 busy polls and a clear one before write-enable, one more before program
	assert.GreaterOrEqual(t, m.StatusPolls, 5)

	b, err := d.ReadByte(0x20)
	failIfErr(t, err)
	assert.Equal(t, byte(0x42), b)
	assert.Equal(t, 0, m.BusyPolls)
}

func TestReadsDoNotWriteEnable(t *testing.T) {
	m, d := newTestDevice(64 * 1024)

	_, err := d.ReadByte(0)
	failIfErr(t, err)
	failIfErr(t, d.ReadBytes(16, make([]byte, 8)))

	assert.Empty(t, opcodeOrder(m, opWriteEnable))
}

func TestNoResponseTimesOutInsteadOfHanging(t *testing.T) {
	m, d := newTestDevice(64 * 1024)
	m.Float = true // nothing on the bus: MISO floats high, busy reads as set

	_, err := d.ReadByte(0)
	assert.ErrorIs(t, err, spiflash.ErrNoResponse)

	err = d.WriteByte(0, 0x00)
	assert.ErrorIs(t, err, spiflash.ErrNoResponse)
}

func TestChipLeftAsleepByPreviousRunTimesOut(t *testing.T) {
	// A fresh handle doesn't know the chip was put to sleep by an earlier
	// process. The status line floats, so the bounded wait reports it.
	m, d := newTestDevice(64 * 1024)
	m.Asleep = true

	_, err := d.ReadByte(0)
	assert.ErrorIs(t, err, spiflash.ErrNoResponse)

	// waking first recovers, as Initialize does
	failIfErr(t, d.Wakeup())
	_, err = d.ReadByte(0)
	failIfErr(t, err)
}

func TestBusy(t *testing.T) {
	m, d := newTestDevice(64 * 1024)

	busy, err := d.Busy()
	failIfErr(t, err)
	assert.False(t, busy)

	m.BusyPolls = 1
	busy, err = d.Busy()
	failIfErr(t, err)
	assert.True(t, busy)

	busy, err = d.Busy()
	failIfErr(t, err)
	assert.False(t, busy)
}

func TestReadStatus(t *testing.T) {
	m, d := newTestDevice(64 * 1024)
	m.Status = 0x1C

	status, err := d.ReadStatus()
	failIfErr(t, err)
	assert.Equal(t, byte(0x1C), status)
}
