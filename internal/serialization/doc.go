// Package serialization reads and writes flat parameter snapshots.
//
// A snapshot is the parameter values of a model in enumeration order, each
// encoded as an 8-byte big-endian IEEE-754 float64:
//
//	Format Structure:
//	  [8 bytes: value 0 (float64 BE)]
//	  [8 bytes: value 1 (float64 BE)]
//	  ...
//
// There is no header, count or checksum; the reader consumes values until
// EOF. The consumer decides whether the count matches its model
// (see CheckCount).
//
// Example usage:
//
//	var buf bytes.Buffer
//	if err := serialization.WriteFloats(&buf, values); err != nil {
//	    log.Fatal(err)
//	}
//	values, err := serialization.ReadFloats(&buf)
package serialization
