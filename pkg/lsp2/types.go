package lsp2

const (
	// CompactLengthPrefixBytes is the width of the big-endian unsigned
	// length field that precedes every CompactBytesArray record.
	CompactLengthPrefixBytes = 2
	MinCompactElementBytes   = 1
	MaxCompactElementBytes   = 32

	VerifiableURIFormatID        uint16 = 0x0000
	VerifiableURIFormatBytes            = 2
	VerificationMethodIDBytes           = 4
	VerifiableURIHashLengthBytes        = 2
	// VerifiableURIHeaderBytes covers format id, method id and hash length.
	VerifiableURIHeaderBytes = VerifiableURIFormatBytes + VerificationMethodIDBytes + VerifiableURIHashLengthBytes

	Keccak256DigestBytes = 32
	DataKeyBytes         = 32
	ArrayLengthBytes     = 16

	JSONDataURIPrefix = "data:application/json;base64,"
)

// VerifiableURI is the decoded form of a VerifiableURI value.
type VerifiableURI struct {
	Method VerificationMethod
	Hash   []byte
	URL    string
}

// JSONURL is the decoded form of a legacy JSONURL value.
type JSONURL struct {
	Method VerificationMethod
	Hash   []byte
	URL    string
}
