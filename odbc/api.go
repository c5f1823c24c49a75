package odbc

import (
	"runtime"
	"unsafe"
)

type sqlReturn int16

const (
	sqlSuccess         sqlReturn = 0
	sqlSuccessWithInfo sqlReturn = 1
	sqlNoData          sqlReturn = 100
	sqlError           sqlReturn = -1
	sqlInvalidHandle   sqlReturn = -2
)

func (r sqlReturn) succeeded() bool {
	return r == sqlSuccess || r == sqlSuccessWithInfo
}

type handleType int16

const (
	handleEnv  handleType = 1
	handleDbc  handleType = 2
	handleStmt handleType = 3
)

const (
	sqlNTS              = -3
	sqlAttrODBCVersion  = 200
	sqlOVODBC3          = 3
	sqlAttrAutocommit   = 102
	sqlAutocommitOff    = 0
	sqlAutocommitOn     = 1
	sqlAttrRowsFetched  = 26
	sqlDriverNoPrompt   = 0
	sqlParamInput       = 1
	sqlCommit           = 0
	sqlRollback         = 1
	sqlUnbind           = 2
	sqlResetParams      = 3
	sqlNullable         = 1
	maxColumnNameLength = 256
	maxMessageLength    = 1024
	sqlDriverVer        = 7
	sqlDMVer            = 171
)

// nullTerminated is SQL_NTS as a variable, a negative constant does not
// convert to uintptr.
var nullTerminated int64 = sqlNTS

func sqlAllocHandle(typ handleType, input uintptr, output *uintptr) sqlReturn {
	r := call(procAllocHandle, uintptr(typ), input, uintptr(unsafe.Pointer(output)))
	runtime.KeepAlive(output)
	return r
}

func sqlFreeHandle(typ handleType, handle uintptr) sqlReturn {
	return call(procFreeHandle, uintptr(typ), handle)
}

func sqlSetEnvAttr(env uintptr, attr int32, value uintptr) sqlReturn {
	return call(procSetEnvAttr, env, uintptr(attr), value, 0)
}

func sqlSetConnectAttr(dbc uintptr, attr int32, value uintptr) sqlReturn {
	return call(procSetConnectAttr, dbc, uintptr(attr), value, 0)
}

func sqlDriverConnect(dbc uintptr, connStr []byte) sqlReturn {
	r := call(procDriverConnect, dbc, 0,
		uintptr(unsafe.Pointer(&connStr[0])), uintptr(nullTerminated),
		0, 0, 0, sqlDriverNoPrompt)
	runtime.KeepAlive(connStr)
	return r
}

func sqlDisconnect(dbc uintptr) sqlReturn {
	return call(procDisconnect, dbc)
}

func sqlEndTran(dbc uintptr, completion int16) sqlReturn {
	return call(procEndTran, uintptr(handleDbc), dbc, uintptr(completion))
}

func sqlPrepare(stmt uintptr, text []byte) sqlReturn {
	r := call(procPrepare, stmt, uintptr(unsafe.Pointer(&text[0])), uintptr(nullTerminated))
	runtime.KeepAlive(text)
	return r
}

func sqlNumResultCols(stmt uintptr, count *int16) sqlReturn {
	r := call(procNumResultCols, stmt, uintptr(unsafe.Pointer(count)))
	runtime.KeepAlive(count)
	return r
}

func sqlNumParams(stmt uintptr, count *int16) sqlReturn {
	r := call(procNumParams, stmt, uintptr(unsafe.Pointer(count)))
	runtime.KeepAlive(count)
	return r
}

type describeResult struct {
	name       [maxColumnNameLength]byte
	nameLength int16
	dataType   int16
	size       uint64
	digits     int16
	nullable   int16
}

func sqlDescribeCol(stmt uintptr, index int, out *describeResult) sqlReturn {
	r := call(procDescribeCol, stmt, uintptr(index),
		uintptr(unsafe.Pointer(&out.name[0])), uintptr(len(out.name)),
		uintptr(unsafe.Pointer(&out.nameLength)),
		uintptr(unsafe.Pointer(&out.dataType)),
		uintptr(unsafe.Pointer(&out.size)),
		uintptr(unsafe.Pointer(&out.digits)),
		uintptr(unsafe.Pointer(&out.nullable)))
	runtime.KeepAlive(out)
	return r
}

func sqlDescribeParam(stmt uintptr, index int, out *describeResult) sqlReturn {
	r := call(procDescribeParam, stmt, uintptr(index),
		uintptr(unsafe.Pointer(&out.dataType)),
		uintptr(unsafe.Pointer(&out.size)),
		uintptr(unsafe.Pointer(&out.digits)),
		uintptr(unsafe.Pointer(&out.nullable)))
	runtime.KeepAlive(out)
	return r
}

// Pointers handed to the bind calls must stay pinned until unbound.

func sqlBindCol(stmt uintptr, index int, cType int16, data unsafe.Pointer, elementSize int, indicators unsafe.Pointer) sqlReturn {
	return call(procBindCol, stmt, uintptr(index), uintptr(int64(cType)),
		uintptr(data), uintptr(elementSize), uintptr(indicators))
}

func sqlBindParameter(stmt uintptr, index int, cType, sqlType int16, columnSize, digits int,
	data unsafe.Pointer, elementSize int, indicators unsafe.Pointer) sqlReturn {
	return call(procBindParameter, stmt, uintptr(index), sqlParamInput,
		uintptr(int64(cType)), uintptr(int64(sqlType)),
		uintptr(columnSize), uintptr(digits),
		uintptr(data), uintptr(elementSize), uintptr(indicators))
}

func sqlSetStmtAttr(stmt uintptr, attr int32, value uintptr) sqlReturn {
	return call(procSetStmtAttr, stmt, uintptr(attr), value, 0)
}

func sqlExecute(stmt uintptr) sqlReturn {
	return call(procExecute, stmt)
}

func sqlFetch(stmt uintptr) sqlReturn {
	return call(procFetch, stmt)
}

func sqlRowCount(stmt uintptr, count *int64) sqlReturn {
	r := call(procRowCount, stmt, uintptr(unsafe.Pointer(count)))
	runtime.KeepAlive(count)
	return r
}

func sqlCloseCursor(stmt uintptr) sqlReturn {
	return call(procCloseCursor, stmt)
}

func sqlFreeStmt(stmt uintptr, option int16) sqlReturn {
	return call(procFreeStmt, stmt, uintptr(option))
}

type diagRecord struct {
	state      [6]byte
	native     int32
	message    [maxMessageLength]byte
	textLength int16
}

func sqlGetDiagRec(typ handleType, handle uintptr, record int, out *diagRecord) sqlReturn {
	r := call(procGetDiagRec, uintptr(typ), handle, uintptr(record),
		uintptr(unsafe.Pointer(&out.state[0])),
		uintptr(unsafe.Pointer(&out.native)),
		uintptr(unsafe.Pointer(&out.message[0])), uintptr(len(out.message)),
		uintptr(unsafe.Pointer(&out.textLength)))
	runtime.KeepAlive(out)
	return r
}

func sqlGetInfoString(dbc uintptr, infoType uint16, out []byte) sqlReturn {
	var length int16
	r := call(procGetInfo, dbc, uintptr(infoType),
		uintptr(unsafe.Pointer(&out[0])), uintptr(len(out)),
		uintptr(unsafe.Pointer(&length)))
	runtime.KeepAlive(out)
	return r
}
