/*
Package keyfile loads the keys of ordered sets from text files.

A key file holds one key per line. Leading and trailing white space is
removed, empty lines and lines starting with '#' are skipped.

Opening a file is done synchronously. Reading is done by a separate goroutine,
which broadcasts lines to the goroutine populating the set; Load returns after
the whole file has been processed. Sets are never touched by more than one
goroutine.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package keyfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbset'
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}
