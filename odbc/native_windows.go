//go:build windows
// +build windows

package odbc

import (
	"syscall"

	"github.com/pkg/errors"
)

// Load a dynamic library on Windows systems
func loadDynamicLibrary(path string) (uintptr, error) {
	handle, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

// Close the library
func closeLibrary(handle uintptr) {
	if handle != 0 {
		syscall.FreeLibrary(syscall.Handle(handle))
	}
}

// Get a symbol from the library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	if handle == 0 {
		return 0, errors.New("invalid library handle")
	}
	return syscall.GetProcAddress(syscall.Handle(handle), name)
}

// call invokes a driver manager entry point and returns its SQLRETURN.
// Pointers converted to uintptr in the argument list stay alive for the
// duration of the call.
//
//go:uintptrescapes
func call(proc uintptr, args ...uintptr) sqlReturn {
	r1, _, _ := syscall.SyscallN(proc, args...)
	return sqlReturn(int16(r1))
}
