package crc

// Variant names one entry of the conventional CRC catalog. The zero
// value is not a valid variant.
type Variant int

const (
	_ Variant = iota

	// CRC-5, used by the symbol codec for payload integrity.
	CRC5

	// CRC-8 family.
	CRC8
	CRC8CDMA2000
	CRC8DARC
	CRC8DVBS2
	CRC8EBU
	CRC8ICode
	CRC8ITU
	CRC8Maxim
	CRC8ROHC
	CRC8WCDMA

	// CRC-16 family.
	CRC16CCITTFalse
	CRC16ARC
	CRC16USB
	CRC16Modbus
	CRC16X25
	CRC16XModem
	CRC16Kermit

	// CRC-32 family.
	CRC32IEEE
	CRC32BZIP2
	CRC32C
	CRC32D
	CRC32MPEG2
	CRC32POSIX
	CRC32Q
	CRC32JAMCRC
	CRC32XFER
)

var catalog = map[Variant]Params{
	CRC5: {Width: 5, Poly: 0x05, Init: 0x1F, RefIn: true, RefOut: true, XorOut: 0x1F},

	CRC8:         {Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00},
	CRC8CDMA2000: {Width: 8, Poly: 0x9B, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0x00},
	CRC8DARC:     {Width: 8, Poly: 0x39, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00},
	CRC8DVBS2:    {Width: 8, Poly: 0xD5, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00},
	CRC8EBU:      {Width: 8, Poly: 0x1D, Init: 0xFF, RefIn: true, RefOut: true, XorOut: 0x00},
	CRC8ICode:    {Width: 8, Poly: 0x1D, Init: 0xFD, RefIn: false, RefOut: false, XorOut: 0x00},
	CRC8ITU:      {Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x55},
	CRC8Maxim:    {Width: 8, Poly: 0x31, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00},
	CRC8ROHC:     {Width: 8, Poly: 0x07, Init: 0xFF, RefIn: true, RefOut: true, XorOut: 0x00},
	CRC8WCDMA:    {Width: 8, Poly: 0x9B, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00},

	CRC16CCITTFalse: {Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000},
	CRC16ARC:        {Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000},
	CRC16USB:        {Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF},
	CRC16Modbus:     {Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0x0000},
	CRC16X25:        {Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF},
	CRC16XModem:     {Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000},
	CRC16Kermit:     {Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000},

	CRC32IEEE:   {Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF},
	CRC32BZIP2:  {Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFF},
	CRC32C:      {Width: 32, Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF},
	CRC32D:      {Width: 32, Poly: 0xA833982B, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF},
	CRC32MPEG2:  {Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0x00000000},
	CRC32POSIX:  {Width: 32, Poly: 0x04C11DB7, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFF},
	CRC32Q:      {Width: 32, Poly: 0x814141AB, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000},
	CRC32JAMCRC: {Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000},
	CRC32XFER:   {Width: 32, Poly: 0x000000AF, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000},
}

// ParamsFor returns the Rocksoft parameter tuple for a named variant. It
// panics on an unknown variant — the variant set is a closed, compile-
// time-known catalog, so an unrecognized value is a programmer error.
func ParamsFor(v Variant) Params {
	p, ok := catalog[v]
	if !ok {
		panic("crc: unknown variant")
	}
	return p
}

// Of computes the checksum for data under the named variant.
func Of(v Variant, data []byte) uint64 {
	return Checksum(ParamsFor(v), data)
}
