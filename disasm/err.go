package disasm

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrTruncated     = errors.New(f("instruction truncated"))
	ErrOffsetRange   = errors.New(f("offset out of range"))
)
