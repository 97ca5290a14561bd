package seednode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/pkg/types"
	"github.com/gabapcia/moneroscan/internal/scan"
)

// ErrLineMismatch reports a line that is not a seed-node insertion. Such
// lines are skipped.
var ErrLineMismatch = errors.New("line is not a seed node entry")

var (
	entryPattern = regexp.MustCompile(`(?i)^full_addrs\.insert\("([^:"]+):([0-9]{2,5})"\);`)

	// Region spans the body of get_seed_nodes in net_node.inl. The start
	// marker may appear anywhere on its line.
	Region = scan.Region{
		Start: regexp.MustCompile(`(?i)::get_seed_nodes\(`),
		End:   regexp.MustCompile(`(?i)^return full_addrs;`),
	}
)

// Record is one seed node.
type Record struct {
	Address string
	Port    int
	Network network.Network
}

// HostPort returns the "address:port" form of r, as written in the source.
func (r Record) HostPort() string {
	return r.Address + ":" + strconv.Itoa(r.Port)
}

// Groups maps a network to its seed nodes as "address:port" strings, in
// order of appearance.
type Groups struct {
	*types.OrderedMap[network.Network, []string]
}

// NewGroups returns an empty Groups.
func NewGroups() Groups {
	return Groups{OrderedMap: types.NewOrderedMap[network.Network, []string](nil)}
}

// Add appends r to the group of its network.
func (g Groups) Add(r Record) {
	g.Update(r.Network, func(nodes []string) []string {
		return append(nodes, r.HostPort())
	})
}

// ParseLine extracts a Record from a full_addrs.insert line and classifies
// it by port. Unknown ports classify as network.Undefined.
func ParseLine(line string) (Record, error) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, ErrLineMismatch
	}

	port, err := strconv.Atoi(m[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: port %q: %v", ErrLineMismatch, m[2], err)
	}

	return Record{
		Address: m[1],
		Port:    port,
		Network: network.Classify(port),
	}, nil
}
