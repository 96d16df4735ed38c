package spiflash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChipErase(t *testing.T) {
	m, d := newTestDevice(64 * 1024)

	failIfErr(t, d.WriteBytes(0x1000, pattern(300)))
	failIfErr(t, d.ChipErase())

	// erase runs asynchronously; the next command waits it out
	empty, err := d.RegionIsEmpty(0x1000, 300)
	failIfErr(t, err)
	assert.True(t, empty)
	assert.Equal(t, 0, m.BusyPolls)
}

func TestBlockErase4KOnlyClearsItsBlock(t *testing.T) {
	m, d := newTestDevice(64 * 1024)

	failIfErr(t, d.WriteByte(0x0FF0, 0x00)) // inside block 0
	failIfErr(t, d.WriteByte(0x1010, 0x00)) // inside block 1

	failIfErr(t, d.BlockErase4K(0x0123))

	assert.Equal(t, byte(0xFF), m.Mem[0x0FF0])
	assert.Equal(t, byte(0x00), m.Mem[0x1010])
}

func TestBlockEraseAlignsToBlockStart(t *testing.T) {
	m, d := newTestDevice(256 * 1024)

	failIfErr(t, d.WriteByte(0x8000, 0x00))
	failIfErr(t, d.WriteByte(0xFFFF, 0x00))
	failIfErr(t, d.WriteByte(0x10000, 0x00))

	// any address inside the 32K block selects the whole block
	failIfErr(t, d.BlockErase32K(0xABCD))

	assert.Equal(t, byte(0xFF), m.Mem[0x8000])
	assert.Equal(t, byte(0xFF), m.Mem[0xFFFF])
	assert.Equal(t, byte(0x00), m.Mem[0x10000])
}

func TestBlockErase64K(t *testing.T) {
	m, d := newTestDevice(256 * 1024)

	failIfErr(t, d.WriteByte(0x1FFFF, 0x00))
	failIfErr(t, d.WriteByte(0x20000, 0x00))

	failIfErr(t, d.BlockErase64K(0x10000))

	assert.Equal(t, byte(0xFF), m.Mem[0x1FFFF])
	assert.Equal(t, byte(0x00), m.Mem[0x20000])
}

func TestEraseThenRewrite(t *testing.T) {
	_, d := newTestDevice(64 * 1024)

	failIfErr(t, d.WriteBytes(0x2000, pattern(64)))
	failIfErr(t, d.BlockErase4K(0x2000))
	failIfErr(t, d.WriteBytes(0x2000, pattern(64)))

	got := make([]byte, 64)
	failIfErr(t, d.ReadBytes(0x2000, got))
	assert.Equal(t, pattern(64), got)
}
