package core

import (
	"fmt"
	"strconv"
)

// AppendRecord renders one record into dst and returns the extended
// slice. The rendered form is
//
//	<seconds>.<nanos> <level-tag> <payload>\n
//
// where the timestamp splits ts into whole seconds and the nanosecond
// remainder. With args, the payload is rendered with fmt.Appendf, so dst
// doubles as the formatting scratch buffer; with no args, format is
// appended verbatim and its % signs are not interpreted. Truncation to
// MaxPayload is not applied
// here; it happens when the record is copied into a slot.
func AppendRecord(dst []byte, ts int64, lvl Level, format string, args ...any) []byte {
	dst = strconv.AppendInt(dst, ts/1e9, 10)
	dst = append(dst, '.')
	dst = strconv.AppendInt(dst, ts%1e9, 10)
	dst = append(dst, ' ', lvl.Tag(), ' ')
	if len(args) == 0 {
		dst = append(dst, format...)
	} else {
		dst = fmt.Appendf(dst, format, args...)
	}
	return append(dst, '\n')
}
