package spiflash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeAddress(t *testing.T) {
	assert.Equal(t, [3]byte{0x12, 0x34, 0x56}, encodeAddress(0x123456))
	assert.Equal(t, [3]byte{0x00, 0x00, 0x00}, encodeAddress(0))
	assert.Equal(t, [3]byte{0xFF, 0xFF, 0xFF}, encodeAddress(0xFFFFFF))
	// bits above 23 are never transmitted
	assert.Equal(t, [3]byte{0x00, 0x00, 0x01}, encodeAddress(0xFF000001))
}
