// Package odbc implements odbcbatch.Statement on top of the system ODBC
// driver manager. The driver manager library is loaded at run time with
// purego, so no C toolchain is needed to build this package.
package odbc

import (
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// LibraryEnv names the environment variable that overrides the driver
// manager library path.
const LibraryEnv = "ODBCBATCH_LIBRARY"

// Library loader
var (
	libOnce    sync.Once
	libLoaded  bool
	libError   error
	libPath    string
	libHandler uintptr
)

// Dynamically loaded driver manager entry points
var (
	procAllocHandle    uintptr
	procFreeHandle     uintptr
	procSetEnvAttr     uintptr
	procDriverConnect  uintptr
	procDisconnect     uintptr
	procPrepare        uintptr
	procNumResultCols  uintptr
	procNumParams      uintptr
	procDescribeCol    uintptr
	procDescribeParam  uintptr
	procBindCol        uintptr
	procBindParameter  uintptr
	procSetStmtAttr    uintptr
	procExecute        uintptr
	procFetch          uintptr
	procRowCount       uintptr
	procCloseCursor    uintptr
	procFreeStmt       uintptr
	procGetDiagRec     uintptr
	procSetConnectAttr uintptr
	procEndTran        uintptr
	procGetInfo        uintptr
)

var symbols = []struct {
	name string
	proc *uintptr
}{
	{"SQLAllocHandle", &procAllocHandle},
	{"SQLFreeHandle", &procFreeHandle},
	{"SQLSetEnvAttr", &procSetEnvAttr},
	{"SQLDriverConnect", &procDriverConnect},
	{"SQLDisconnect", &procDisconnect},
	{"SQLPrepare", &procPrepare},
	{"SQLNumResultCols", &procNumResultCols},
	{"SQLNumParams", &procNumParams},
	{"SQLDescribeCol", &procDescribeCol},
	{"SQLDescribeParam", &procDescribeParam},
	{"SQLBindCol", &procBindCol},
	{"SQLBindParameter", &procBindParameter},
	{"SQLSetStmtAttr", &procSetStmtAttr},
	{"SQLExecute", &procExecute},
	{"SQLFetch", &procFetch},
	{"SQLRowCount", &procRowCount},
	{"SQLCloseCursor", &procCloseCursor},
	{"SQLFreeStmt", &procFreeStmt},
	{"SQLGetDiagRec", &procGetDiagRec},
	{"SQLSetConnectAttr", &procSetConnectAttr},
	{"SQLEndTran", &procEndTran},
	{"SQLGetInfo", &procGetInfo},
}

// Available reports whether the driver manager library could be loaded.
func Available() bool {
	loadLibrary()
	return libLoaded
}

// LibraryError returns the error that occurred while loading the driver
// manager library, if any.
func LibraryError() error {
	loadLibrary()
	return libError
}

// LibraryPath returns the path the driver manager was loaded from.
func LibraryPath() string {
	loadLibrary()
	return libPath
}

func loadLibrary() {
	libOnce.Do(func() {
		var lastErr error
		for _, path := range libraryCandidates(runtime.GOOS, os.Getenv(LibraryEnv)) {
			handler, err := loadDynamicLibrary(path)
			if err != nil {
				lastErr = err
				continue
			}
			if err := loadFunctions(handler); err != nil {
				closeLibrary(handler)
				lastErr = err
				continue
			}
			libHandler = handler
			libPath = path
			libLoaded = true
			return
		}
		if lastErr == nil {
			lastErr = errors.Errorf("no ODBC driver manager known for %s", runtime.GOOS)
		}
		libError = errors.Wrap(lastErr, "failed to load ODBC driver manager")
	})
}

// libraryCandidates lists the library names tried in order. An explicit
// override is the only candidate.
func libraryCandidates(goos, override string) []string {
	if override != "" {
		return []string{override}
	}
	switch goos {
	case "windows":
		return []string{"odbc32.dll"}
	case "darwin":
		return []string{"libodbc.2.dylib", "libodbc.dylib", "libiodbc.2.dylib", "libiodbc.dylib"}
	case "linux", "freebsd", "netbsd", "openbsd":
		return []string{"libodbc.so.2", "libodbc.so", "libiodbc.so.2"}
	default:
		return nil
	}
}

func loadFunctions(handler uintptr) error {
	for _, s := range symbols {
		proc, err := getSymbol(handler, s.name)
		if err != nil {
			return errors.Wrapf(err, "symbol %s", s.name)
		}
		*s.proc = proc
	}
	return nil
}

func requireLibrary() error {
	loadLibrary()
	return libError
}
