// Package priority ranks blockchain networks for balance ordering.
package priority

import (
	"github.com/pkg/errors"
)

// DefaultUnknown is the priority of networks missing from the table.
const DefaultUnknown = -99

// DefaultNetworks is the built-in network priority table. Higher is more important.
var DefaultNetworks = map[string]int{
	"Osmosis":  100,
	"Ethereum": 50,
	"Arbitrum": 30,
	"Zilliqa":  20,
	"Neo":      20,
}

// Classifier assigns a priority to a blockchain network. Safe for concurrent use.
type Classifier struct {
	networks map[string]int
	unknown  int
}

// NewClassifier creates a classifier from a priority table and the unknown-network sentinel.
// Every configured priority must be strictly greater than unknown.
func NewClassifier(networks map[string]int, unknown int) (*Classifier, error) {
	table := make(map[string]int, len(networks))
	for network, p := range networks {
		if network == "" {
			return nil, errors.New("network name must not be empty")
		}
		if p <= unknown {
			return nil, errors.Errorf("priority %d of network %s must be greater than unknown priority %d", p, network, unknown)
		}
		table[network] = p
	}

	return &Classifier{networks: table, unknown: unknown}, nil
}

// NewDefaultClassifier returns a classifier over DefaultNetworks.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultNetworks, DefaultUnknown)
	if err != nil {
		panic(err)
	}
	return c
}

// PriorityOf returns the network priority, or the unknown sentinel.
func (c *Classifier) PriorityOf(blockchain string) int {
	if p, ok := c.networks[blockchain]; ok {
		return p
	}
	return c.unknown
}

// Known reports whether the network is in the table.
func (c *Classifier) Known(blockchain string) bool {
	_, ok := c.networks[blockchain]
	return ok
}

// Unknown returns the sentinel priority.
func (c *Classifier) Unknown() int {
	return c.unknown
}
