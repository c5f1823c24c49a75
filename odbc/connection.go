package odbc

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/semihalev/go-odbcbatch"
)

// Connection is a connection to a data source through the driver manager.
// It owns its own environment handle.
type Connection struct {
	mu     sync.Mutex
	env    uintptr
	dbc    uintptr
	closed bool
}

// Connect opens a connection with an ODBC connection string such as
// "Driver={PostgreSQL Unicode};Server=localhost;Database=test".
func Connect(connectionString string) (*Connection, error) {
	if err := requireLibrary(); err != nil {
		return nil, err
	}

	c := &Connection{}
	if r := sqlAllocHandle(handleEnv, 0, &c.env); !r.succeeded() {
		return nil, errors.WithStack(odbcbatch.NewDriverError("", "SQLAllocHandle(ENV) failed"))
	}
	if err := diagnose(sqlSetEnvAttr(c.env, sqlAttrODBCVersion, sqlOVODBC3), handleEnv, c.env, "SQLSetEnvAttr"); err != nil {
		c.free()
		return nil, err
	}
	if err := diagnose(sqlAllocHandle(handleDbc, c.env, &c.dbc), handleEnv, c.env, "SQLAllocHandle(DBC)"); err != nil {
		c.free()
		return nil, err
	}
	if err := diagnose(sqlDriverConnect(c.dbc, nulTerminated(connectionString)), handleDbc, c.dbc, "SQLDriverConnect"); err != nil {
		c.free()
		return nil, err
	}

	odbcbatch.Logger().Debug("connected", zap.String("library", libPath))
	return c, nil
}

// Prepare prepares query on a new statement handle.
func (c *Connection) Prepare(query string) (*Statement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, errors.WithStack(odbcbatch.NewError(odbcbatch.ErrClosed, "connection is closed"))
	}

	var handle uintptr
	if err := diagnose(sqlAllocHandle(handleStmt, c.dbc, &handle), handleDbc, c.dbc, "SQLAllocHandle(STMT)"); err != nil {
		return nil, err
	}
	if err := diagnose(sqlPrepare(handle, nulTerminated(query)), handleStmt, handle, "SQLPrepare"); err != nil {
		sqlFreeHandle(handleStmt, handle)
		return nil, err
	}
	return newStatement(handle), nil
}

// DriverManagerVersion returns the version of the loaded driver manager.
func (c *Connection) DriverManagerVersion() (odbcbatch.Version, error) {
	return c.infoVersion(sqlDMVer, "SQLGetInfo(DM_VER)")
}

// DriverVersion returns the version of the connected driver.
func (c *Connection) DriverVersion() (odbcbatch.Version, error) {
	return c.infoVersion(sqlDriverVer, "SQLGetInfo(DRIVER_VER)")
}

func (c *Connection) infoVersion(infoType uint16, call string) (odbcbatch.Version, error) {
	buf := make([]byte, 64)
	if err := diagnose(sqlGetInfoString(c.dbc, infoType, buf), handleDbc, c.dbc, call); err != nil {
		return odbcbatch.Version{}, err
	}
	return odbcbatch.ParseVersion(cString(buf))
}

// SetAutocommit switches autocommit mode on or off.
func (c *Connection) SetAutocommit(enabled bool) error {
	value := uintptr(sqlAutocommitOff)
	if enabled {
		value = sqlAutocommitOn
	}
	return diagnose(sqlSetConnectAttr(c.dbc, sqlAttrAutocommit, value), handleDbc, c.dbc, "SQLSetConnectAttr(AUTOCOMMIT)")
}

// Commit commits the current transaction.
func (c *Connection) Commit() error {
	return diagnose(sqlEndTran(c.dbc, sqlCommit), handleDbc, c.dbc, "SQLEndTran(COMMIT)")
}

// Rollback rolls back the current transaction.
func (c *Connection) Rollback() error {
	return diagnose(sqlEndTran(c.dbc, sqlRollback), handleDbc, c.dbc, "SQLEndTran(ROLLBACK)")
}

// Close disconnects and releases the handles. Statements must be closed first.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	err := diagnose(sqlDisconnect(c.dbc), handleDbc, c.dbc, "SQLDisconnect")
	c.free()
	return err
}

func (c *Connection) free() {
	if c.dbc != 0 {
		sqlFreeHandle(handleDbc, c.dbc)
		c.dbc = 0
	}
	if c.env != 0 {
		sqlFreeHandle(handleEnv, c.env)
		c.env = 0
	}
}
