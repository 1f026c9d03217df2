package crc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/crc"
)

const checkSequence = "123456789"

func TestCheckValues(t *testing.T) {
	cases := []struct {
		name string
		v    crc.Variant
		want uint64
	}{
		{"CRC-5", crc.CRC5, 0x19},
		{"CRC-8", crc.CRC8, 0xF4},
		{"CRC-8/CDMA2000", crc.CRC8CDMA2000, 0xDA},
		{"CRC-8/DARC", crc.CRC8DARC, 0x15},
		{"CRC-8/DVB-S2", crc.CRC8DVBS2, 0xBC},
		{"CRC-8/EBU", crc.CRC8EBU, 0x97},
		{"CRC-8/I-CODE", crc.CRC8ICode, 0x7E},
		{"CRC-8/ITU", crc.CRC8ITU, 0xA1},
		{"CRC-8/MAXIM", crc.CRC8Maxim, 0xA1},
		{"CRC-8/ROHC", crc.CRC8ROHC, 0xD0},
		{"CRC-8/WCDMA", crc.CRC8WCDMA, 0x25},
		{"CRC-16/CCITT-FALSE", crc.CRC16CCITTFalse, 0x29B1},
		{"CRC-16/ARC", crc.CRC16ARC, 0xBB3D},
		{"CRC-16/USB", crc.CRC16USB, 0xB4C8},
		{"CRC-16/MODBUS", crc.CRC16Modbus, 0x4B37},
		{"CRC-16/X-25", crc.CRC16X25, 0x906E},
		{"CRC-16/XMODEM", crc.CRC16XModem, 0x31C3},
		{"CRC-16/KERMIT", crc.CRC16Kermit, 0x2189},
		{"CRC-32/IEEE", crc.CRC32IEEE, 0xCBF43926},
		{"CRC-32/BZIP2", crc.CRC32BZIP2, 0xFC891918},
		{"CRC-32C", crc.CRC32C, 0xE3069283},
		{"CRC-32/MPEG-2", crc.CRC32MPEG2, 0x0376E6E7},
		{"CRC-32/POSIX", crc.CRC32POSIX, 0x765E7680},
		{"CRC-32/JAMCRC", crc.CRC32JAMCRC, 0x340BC6D9},
		{"CRC-32/XFER", crc.CRC32XFER, 0xBD0BE338},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, crc.Of(tc.v, []byte(checkSequence)))
		})
	}
}

func TestCRC5LongSequences(t *testing.T) {
	base := []byte("helloworldchris!")

	require.Equal(t, uint64(0xA), crc.Of(crc.CRC5, base))

	twice := append(append([]byte{}, base...), base...)
	require.Equal(t, uint64(0x1B), crc.Of(crc.CRC5, twice))

	thrice := append(append([]byte{}, twice...), base...)
	require.Equal(t, uint64(0xC), crc.Of(crc.CRC5, thrice))
}

func TestChecksumOnShortInput(t *testing.T) {
	// Init/XorOut still apply even when data is shorter than the register.
	require.NotPanics(t, func() {
		crc.Of(crc.CRC32IEEE, nil)
		crc.Of(crc.CRC5, []byte{0x01})
	})
}
