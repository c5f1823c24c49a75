package odbcbatch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "odbcbatch: invalid value: too long", NewError(ErrInvalidValue, "too long").Error())
	assert.Equal(t, "odbcbatch: driver error: [HY000] boom", NewDriverError("HY000", "boom").Error())
	assert.Equal(t, "error type 42", ErrorType(42).String())
}

func TestIsError(t *testing.T) {
	err := driverCall(NewDriverError("HY000", "boom"), "fetch batch %d", 3)
	assert.True(t, IsError(err, ErrDriver))
	assert.False(t, IsError(err, ErrLogic))
	assert.Contains(t, err.Error(), "fetch batch 3")
	assert.Equal(t, ErrDriver, errors.Cause(err).(*Error).Type)

	assert.False(t, IsError(errors.New("plain"), ErrDriver))
	assert.False(t, IsError(nil, ErrDriver))
	assert.NoError(t, driverCall(nil, "unused"))

	assert.True(t, IsError(newInvalidValueError("x %d", 1), ErrInvalidValue))
	assert.True(t, IsError(newLogicError("y"), ErrLogic))
}
