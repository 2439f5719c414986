package net

import (
	"fmt"
	"strings"
)

// Network holds the defaults of one PIVX chain.
type Network struct {
	Name    string
	RPCPort int
	P2PPort int
	Testnet bool
}

var (
	Mainnet = Network{Name: "mainnet", RPCPort: 51473, P2PPort: 51472}
	Testnet = Network{Name: "testnet", RPCPort: 51475, P2PPort: 51474, Testnet: true}
	Regtest = Network{Name: "regtest", RPCPort: 51477, P2PPort: 51476, Testnet: true}
)

// Lookup returns the preset for name. The empty name selects mainnet.
func Lookup(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "main", "mainnet", "pivx":
		return Mainnet, nil
	case "test", "testnet", "testnet4":
		return Testnet, nil
	case "regtest":
		return Regtest, nil
	}
	return Network{}, fmt.Errorf("%s is currently not supported, use mainnet, testnet or regtest", name)
}

// DefaultEndpoint is the local node's RPC address on this network.
func (n Network) DefaultEndpoint() string {
	return fmt.Sprintf("127.0.0.1:%d", n.RPCPort)
}
