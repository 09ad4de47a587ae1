package section

const (
	// Bit masks
	EndiannessMask   = 0x0001 // Mask for payload endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicFrameV1Opt = 0xB710 // MagicFrameV1Opt is the version 1 magic number for value frames.
)

// offset and section sizes in a frame
const (
	FrameHeaderSize    = 24              // fixed header size in bytes
	PayloadOffset      = FrameHeaderSize // byte offset where the payload starts
	MaxFramePayloadLen = 1<<32 - 1       // largest payload size a header can describe
)
