// Package status reports the fatal, caller-visible outcomes of a run:
// the four error kinds a layer-arithmetic pass can fail with, plus success.
//
// It is deliberately not the Go "error interface + sentinel values" idiom.
// A Status is a small bitmasked value that also implements error, so call
// sites that only care whether something failed can keep treating it as an
// error, while call sites that need to branch on the failure kind (the CLI,
// picking an exit code) can test it directly with Is.
package status

import "fmt"

// Status represents the outcome of an operation.
type Status uint32

// High level outcome bits.
const (
	Failure    Status = 1 << 31 // the operation failed
	Success    Status = 1 << 30 // the operation succeeded
	InProgress Status = 1 << 29 // the operation has not concluded yet
)

// Detail mask and the four fatal error kinds from the error handling design.
const (
	DetailMask        Status = 0x0fffffff
	InputUnavailable  Status = 1 << 0 // input file could not be opened or read
	OutputUnavailable Status = 1 << 1 // output file could not be created or written
	MalformedCIF      Status = 1 << 2 // a CIF command violated the accepted grammar
	Usage             Status = 1 << 3 // required flags missing, or mutually exclusive constraint violated
)

// Error implements the error interface.
func (s Status) Error() string {
	if s&Failure != 0 {
		switch s & DetailMask {
		case InputUnavailable:
			return "input unavailable"
		case OutputUnavailable:
			return "output unavailable"
		case MalformedCIF:
			return "malformed CIF"
		case Usage:
			return "usage error"
		default:
			return fmt.Sprintf("unspecified failure 0x%x", uint32(s))
		}
	}
	if s&InProgress != 0 {
		return "in progress"
	}
	return "success"
}

// Failed reports whether s represents a failed operation.
func Failed(s Status) bool {
	return s&Failure != 0
}

// Succeeded reports whether s represents a successful operation.
func Succeeded(s Status) bool {
	return s&Success != 0
}

// Is reports whether s carries the given detail bit.
func Is(s Status, detail Status) bool {
	return s&detail != 0
}

// Fail builds a Failure status carrying the given detail bit.
func Fail(detail Status) Status {
	return Failure | detail
}

// ExitCode maps a failure Status to a process exit code. It follows the BSD
// sysexits.h convention for usage errors (64) and reserves distinct small
// codes for the I/O and format failure kinds; spec.md only requires
// "non-zero on failure", this mapping is this repo's own scheme.
func ExitCode(s Status) int {
	if !Failed(s) {
		return 0
	}
	switch s & DetailMask {
	case InputUnavailable, OutputUnavailable:
		return 2
	case MalformedCIF:
		return 3
	case Usage:
		return 64
	default:
		return 1
	}
}
