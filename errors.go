package pcapng

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// errTruncated signals that a read ran past the end of the available
// bytes. It is not returned on its own: block decoders wrap it in a
// *BlockError. The framer does not use it.
var errTruncated = errors.New("truncated: not enough bytes remaining")

// ErrDidntStartWithSHB is returned by Capture.Next when the very first
// block in the stream is not a section header block.
var ErrDidntStartWithSHB = errors.New("pcapng: capture did not start with a section header block")

// errNotSeekable is returned by Capture.Rewind when the underlying reader
// doesn't implement io.Seeker.
var errNotSeekable = errors.New("pcapng: underlying reader does not support seeking")

// FrameError reports structural corruption in the block framing layer:
// a bad byte-order magic, an impossibly short length, or mismatched
// leading/trailing length fields. Once returned, the underlying
// *Capture is dead and every subsequent call to Next returns io.EOF.
type FrameError struct {
	// Offset is the absolute byte offset in the source stream at which
	// the malformed block starts.
	Offset int64
	Reason string
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("pcapng: framing error at offset %d: %s", e.Offset, e.Reason)
}

// BlockError reports a well-framed block whose body could not be fully
// decoded. The frame itself was successfully delimited, so iteration may
// continue with the next block.
type BlockError struct {
	BlockType uint32
	Cause     error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("pcapng: block 0x%08x: %s", e.BlockType, e.Cause)
}

func (e *BlockError) Unwrap() error {
	return e.Cause
}

func newBlockError(blockType uint32, cause error) *BlockError {
	return &BlockError{BlockType: blockType, Cause: pkgerrors.WithStack(cause)}
}
