//go:build !windows
// +build !windows

package odbc

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// Load a dynamic library on Unix systems using purego
func loadDynamicLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// Close the library
func closeLibrary(handle uintptr) {
	if handle != 0 {
		purego.Dlclose(handle)
	}
}

// Get a symbol from the library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	if handle == 0 {
		return 0, errors.New("invalid library handle")
	}
	return purego.Dlsym(handle, name)
}

// call invokes a driver manager entry point and returns its SQLRETURN.
// Pointers converted to uintptr in the argument list stay alive for the
// duration of the call.
//
//go:uintptrescapes
func call(proc uintptr, args ...uintptr) sqlReturn {
	r1, _, _ := purego.SyscallN(proc, args...)
	return sqlReturn(int16(r1))
}
