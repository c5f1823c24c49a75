package odbc

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"github.com/semihalev/go-odbcbatch"
)

// diagnose turns a failed SQLRETURN into an odbcbatch.ErrDriver error built
// from the handle's diagnostic records.
func diagnose(r sqlReturn, typ handleType, handle uintptr, call string) error {
	if r.succeeded() {
		return nil
	}
	if r == sqlInvalidHandle {
		return errors.WithStack(odbcbatch.NewDriverError("", call+": invalid handle"))
	}

	var (
		state    string
		messages []string
		rec      diagRecord
	)
	for i := 1; ; i++ {
		if !sqlGetDiagRec(typ, handle, i, &rec).succeeded() {
			break
		}
		if state == "" {
			state = cString(rec.state[:])
		}
		messages = append(messages, cString(rec.message[:]))
	}
	if len(messages) == 0 {
		messages = append(messages, "no diagnostic available")
	}
	return errors.WithStack(odbcbatch.NewDriverError(state, call+": "+strings.Join(messages, "; ")))
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func nulTerminated(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
