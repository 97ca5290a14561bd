package hardfork

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/pkg/types"
	"github.com/gabapcia/moneroscan/internal/scan"
)

// ErrLineMismatch reports a line that does not have the shape of a hard-fork
// entry. It is never fatal: such lines are skipped.
var ErrLineMismatch = errors.New("line is not a hard fork entry")

var (
	// entryPattern matches "{ version, _, height, difficulty }" table rows.
	entryPattern = regexp.MustCompile(`(?i)^\{ (\d+), (\d+), (\d+), (\d+.* \})`)

	regionEnd = regexp.MustCompile(`(?i)^};`)

	// difficultyJunk is removed from the last captured group before parsing.
	difficultyJunk = strings.NewReplacer(" ", "", "}", "")
)

// Region returns the scan region of the hard-fork table of n in
// hardforks.cpp.
func Region(n network.Network) scan.Region {
	return scan.Region{
		Start: regexp.MustCompile(`(?i)^const hardfork_t ` + regexp.QuoteMeta(n.String()) + `_hard_forks\[\]`),
		End:   regionEnd,
	}
}

// Record is one hard-fork table entry. ActivationDate holds a formatted UTC
// date or Placeholder.
type Record struct {
	Version        string
	Height         uint64
	Difficulty     *big.Int
	ActivationDate string
}

// Key returns the name the record is listed under.
func (r Record) Key() string {
	return "Version " + r.Version
}

// Fields returns the printable values of r: date, height and difficulty.
func (r Record) Fields() []string {
	return []string{
		r.ActivationDate,
		strconv.FormatUint(r.Height, 10),
		r.Difficulty.String(),
	}
}

// Records holds hard-fork records keyed by Record.Key, in the order they
// appear in the source.
type Records struct {
	*types.OrderedMap[string, Record]
}

// NewRecords returns an empty Records.
func NewRecords() Records {
	return Records{OrderedMap: types.NewOrderedMap[string, Record](nil)}
}

// ParseLine extracts a Record from a hard-fork table row. The activation
// date is left empty. Lines of any other shape fail with ErrLineMismatch.
//
// The difficulty column has no fixed width in upstream sources, so it is
// parsed with arbitrary precision.
func ParseLine(line string) (Record, error) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, ErrLineMismatch
	}

	height, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: height %q: %v", ErrLineMismatch, m[3], err)
	}

	raw := difficultyJunk.Replace(m[4])
	difficulty, ok := new(big.Int).SetString(raw, 10)
	if !ok || difficulty.Sign() < 0 {
		return Record{}, fmt.Errorf("%w: difficulty %q", ErrLineMismatch, raw)
	}

	return Record{
		Version:    m[1],
		Height:     height,
		Difficulty: difficulty,
	}, nil
}
