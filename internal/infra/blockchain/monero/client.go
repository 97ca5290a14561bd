// Package monero implements hardfork.BlockHeaderSource against a monerod
// daemon through its JSON-RPC interface.
package monero

import (
	"fmt"

	"github.com/gabapcia/moneroscan/internal/hardfork"
	"github.com/gabapcia/moneroscan/internal/network"
	"github.com/gabapcia/moneroscan/internal/pkg/transport/jsonrpc"
)

// client talks to a single monerod instance.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the daemon
}

// Ensure client implements the hardfork.BlockHeaderSource interface at compile time.
var _ hardfork.BlockHeaderSource = (*client)(nil)

// Endpoint returns the JSON-RPC URL of the daemon at host serving n.
func Endpoint(host string, n network.Network) string {
	return fmt.Sprintf("http://%s:%d/json_rpc", host, network.RPCPort(n))
}

// NewClient creates a daemon client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
