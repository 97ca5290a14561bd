// Package network names the Monero networks and the well-known ports that
// identify them.
package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNetwork is returned by Parse for names outside the known set.
var ErrUnknownNetwork = errors.New("unknown monero network")

// Network identifies a Monero network.
type Network string

const (
	Mainnet   Network = "mainnet"
	Stagenet  Network = "stagenet"
	Testnet   Network = "testnet"
	Undefined Network = "undefined"

	// All is a selector, not a network: it asks for every network at once.
	All Network = "all"
)

// Known lists the real networks in their conventional order.
var Known = []Network{Mainnet, Stagenet, Testnet}

var (
	p2pPorts = map[Network]int{
		Mainnet:  18080,
		Stagenet: 38080,
		Testnet:  28080,
	}

	rpcPorts = map[Network]int{
		Mainnet:  18081,
		Stagenet: 38081,
		Testnet:  28081,
	}

	byP2PPort = map[int]Network{
		18080: Mainnet,
		38080: Stagenet,
		28080: Testnet,
	}
)

func (n Network) String() string {
	return string(n)
}

// Parse resolves a network name, case-insensitively. allowAll controls
// whether the "all" selector is accepted.
func Parse(s string, allowAll bool) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if n == All && allowAll {
		return All, nil
	}

	if _, ok := p2pPorts[n]; ok {
		return n, nil
	}

	return "", fmt.Errorf("%w: '%s'", ErrUnknownNetwork, s)
}

// Classify maps a P2P port to the network it belongs to. Every port maps
// to exactly one network; unrecognized ports map to Undefined.
func Classify(port int) Network {
	if n, ok := byP2PPort[port]; ok {
		return n
	}
	return Undefined
}

// P2PPort returns the default peer-to-peer port of n, or 0 when n is not a
// real network.
func P2PPort(n Network) int {
	return p2pPorts[n]
}

// RPCPort returns the default daemon RPC port of n, or 0 when n is not a
// real network.
func RPCPort(n Network) int {
	return rpcPorts[n]
}
