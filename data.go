package jamo

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/npillmayer/jamo/jamotab"
)

// Embedded decomposition reference data. The canonical files cover the jamo
// and HCJ blocks; the auxiliary file carries archaic decompositions and
// marker entries and takes precedence. All three are validated with
// cmd/jamotab before being committed.

//go:embed data/jamo.txt
var jamoData []byte

//go:embed data/hcj.txt
var hcjData []byte

//go:embed data/archaic.txt
var archaicData []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide decomposition table, built once from the
// embedded reference data. All package-level compound operations run against
// it.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := LoadTable("embedded",
			jamotab.NewReader(bytes.NewReader(jamoData)),
			jamotab.NewReader(bytes.NewReader(hcjData)))
		assert(err == nil, "embedded jamo decomposition data is broken")
		err = t.LoadOverrideReader(jamotab.NewReader(bytes.NewReader(archaicData)))
		assert(err == nil, "embedded archaic decomposition data is broken")
		defaultTable = t
	})
	return defaultTable
}
