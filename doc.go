/*
Package odbcbatch provides buffered, batch-oriented result set retrieval on top of ODBC-style drivers.

# Overview

Instead of fetching one value at a time, odbcbatch binds fixed-size column buffers to a
prepared statement and lets the driver fill a whole batch of rows per fetch call. Every
buffer element carries a length/null indicator next to its fixed-width payload, exactly
the layout ODBC uses for column-wise binding. Parameters are sent the same way: rows are
staged in bound parameter buffers and executed as one batch.

The driver is reached through the Statement interface. The odbc sub-package implements it
for the system ODBC driver manager; tests and other back ends can provide their own.

# Reading Results

	opts := odbcbatch.NewOptions(
		odbcbatch.WithReadBufferSize(odbcbatch.Megabytes(20)),
		odbcbatch.WithAsyncIO(true),
	)

	query, err := odbcbatch.NewQuery(stmt, opts)
	if err != nil {
		log.Fatalf("failed to create query: %v", err)
	}
	defer query.Close()

	if err := query.Execute(); err != nil {
		log.Fatalf("failed to execute: %v", err)
	}

	rows, err := odbcbatch.NewRowBasedResultSet(query.ResultSet())
	if err != nil {
		log.Fatalf("failed to read result: %v", err)
	}
	for {
		row, err := rows.FetchRow()
		if err != nil {
			log.Fatalf("failed to fetch: %v", err)
		}
		if len(row) == 0 {
			break
		}
		fmt.Println(row[0].Value(), row[1].Value())
	}

# Double Buffering

With UseAsyncIO enabled, Execute returns a DoubleBufferedResultSet. It splits the read
buffer into two halves and keeps one background goroutine fetching into the half the
caller is not reading. Failures of the background fetch are returned by the next
FetchNextBatch call. Close always waits for the goroutine to exit.

# Writing Parameters

	for _, user := range users {
		if err := query.AddParameterValues(user.ID, user.Name); err != nil {
			return err
		}
	}
	return query.Execute()

When a value does not fit the layout the driver described for its parameter, for example
a string longer than the declared column size, the rows staged so far are sent, the
parameter is rebound with a layout wide enough for the value and staging continues.

# Configuration

Options can be built with functional options or loaded from YAML:

	read_buffer_size:
	  megabytes: 20
	parameter_sets_to_buffer: 1000
	use_async_io: true
	varchar_max_character_limit: 65535
*/
package odbcbatch
