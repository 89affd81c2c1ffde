package command

import (
	"errors"
	"fmt"
)

// ErrTruncated indicates a record's body ended before every field its tag
// requires could be read.
var ErrTruncated = errors.New("command: truncated record body")

// ErrUTF8 indicates a name/product text field was not valid UTF-8.
var ErrUTF8 = errors.New("command: invalid utf-8 in text field")

// UnknownCommandError reports a 4-byte tag absent from the decode table.
// It is non-fatal: the payload splitter continues past the record using
// its declared size regardless of whether the tag was recognized.
type UnknownCommandError struct {
	Tag [4]byte
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command: unknown tag %q", e.Tag[:])
}

func truncatedf(tag string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncated, tag, need, have)
}
