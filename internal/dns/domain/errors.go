package domain

import "errors"

// Every failure this resolver can produce maps to exactly one of the
// sentinel errors below. Errors may be wrapped with context on the way up,
// but the kind stays recoverable with errors.Is; nothing is retried and no
// partial result ever accompanies an error.
var (
	// Header decode failures, one per field, so truncation is diagnosable
	// to the exact field that could not be read.
	ErrParseID              = errors.New("could not parse id in header")
	ErrParseFlags           = errors.New("could not parse flags in header")
	ErrParseQuestionCount   = errors.New("could not parse number of questions")
	ErrParseAnswerCount     = errors.New("could not parse number of answers")
	ErrParseAuthorityCount  = errors.New("could not parse number of authorities")
	ErrParseAdditionalCount = errors.New("could not parse number of additionals")

	// Name codec failures.
	ErrReadByte      = errors.New("could not read label bytes in name")
	ErrReadLength    = errors.New("could not read length byte in name")
	ErrPointerRead   = errors.New("could not read second byte of compression pointer")
	ErrPointerSeek   = errors.New("compression pointer offset out of bounds")
	ErrCursorRestore = errors.New("could not restore cursor after compression pointer")
	ErrPointerLoop   = errors.New("compression pointer chain too deep")
	ErrInvalidName   = errors.New("invalid byte in name")
	ErrLabelTooLong  = errors.New("label exceeds 63 bytes")
	ErrNameTooLong   = errors.New("encoded name exceeds 255 bytes")

	// Question and record decode failures.
	ErrReadQuestionType       = errors.New("could not read type in question")
	ErrReadQuestionClass      = errors.New("could not read class in question")
	ErrReadRecordType         = errors.New("could not read type in record")
	ErrReadRecordClass        = errors.New("could not read class in record")
	ErrReadRecordTTL          = errors.New("could not read ttl in record")
	ErrReadRecordDataLength   = errors.New("could not read data length in record")
	ErrReadRecordData         = errors.New("could not read data in record")
	ErrUnrecognizedRecordType = errors.New("unrecognized record type value")

	// Transport failures.
	ErrTransportBind    = errors.New("could not bind local socket")
	ErrTransportSend    = errors.New("could not send query")
	ErrTransportReceive = errors.New("could not receive response")

	// Resolution-level failures.
	ErrQuerySerialization = errors.New("could not serialize query")
	ErrUnknownDomain      = errors.New("no nameserver knows the domain name")
	ErrResponseTruncated  = errors.New("response filled the receive buffer and may be truncated")
	ErrDelegationLoop     = errors.New("delegation chain looped or exceeded maximum depth")
)

// exitCodes is the one-to-one table mapping error kinds to process exit
// codes. Order matters: ExitCode reports the first kind an error matches,
// so outer kinds (query serialization) precede the kinds they may wrap.
var exitCodes = []struct {
	err  error
	code int
}{
	{ErrQuerySerialization, 24},
	{ErrParseID, 3},
	{ErrParseFlags, 4},
	{ErrParseQuestionCount, 5},
	{ErrParseAnswerCount, 6},
	{ErrParseAuthorityCount, 7},
	{ErrParseAdditionalCount, 8},
	{ErrReadByte, 9},
	{ErrReadLength, 10},
	{ErrReadQuestionType, 11},
	{ErrReadQuestionClass, 12},
	{ErrReadRecordType, 13},
	{ErrReadRecordClass, 14},
	{ErrReadRecordTTL, 15},
	{ErrReadRecordDataLength, 16},
	{ErrReadRecordData, 17},
	{ErrTransportBind, 18},
	{ErrTransportSend, 19},
	{ErrTransportReceive, 20},
	{ErrPointerRead, 21},
	{ErrPointerSeek, 22},
	{ErrCursorRestore, 23},
	{ErrUnrecognizedRecordType, 25},
	{ErrInvalidName, 26},
	{ErrUnknownDomain, 27},
	{ErrResponseTruncated, 28},
	{ErrPointerLoop, 29},
	{ErrDelegationLoop, 30},
	{ErrLabelTooLong, 26},
	{ErrNameTooLong, 26},
}

// ExitCode returns the fixed process exit code for the given error.
// Unrecognized errors map to 1.
func ExitCode(err error) int {
	for _, entry := range exitCodes {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return 1
}
