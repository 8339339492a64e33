package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_PriorityOf(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		name       string
		blockchain string
		expected   int
	}{
		{name: "Osmosis", blockchain: "Osmosis", expected: 100},
		{name: "Ethereum", blockchain: "Ethereum", expected: 50},
		{name: "Arbitrum", blockchain: "Arbitrum", expected: 30},
		{name: "Zilliqa", blockchain: "Zilliqa", expected: 20},
		{name: "Neo", blockchain: "Neo", expected: 20},
		{name: "unrecognized", blockchain: "Unknown", expected: DefaultUnknown},
		{name: "case sensitive", blockchain: "osmosis", expected: DefaultUnknown},
		{name: "empty", blockchain: "", expected: DefaultUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.PriorityOf(tt.blockchain))
		})
	}
}

func TestClassifier_UnknownBelowEveryPriority(t *testing.T) {
	c := NewDefaultClassifier()
	for network := range DefaultNetworks {
		assert.Greater(t, c.PriorityOf(network), c.Unknown(), network)
		assert.True(t, c.Known(network))
	}
	assert.False(t, c.Known("Solana"))
}

func TestNewClassifier(t *testing.T) {
	t.Run("custom table", func(t *testing.T) {
		c, err := NewClassifier(map[string]int{"Solana": 5}, 0)
		require.NoError(t, err)
		assert.Equal(t, 5, c.PriorityOf("Solana"))
		assert.Equal(t, 0, c.PriorityOf("Osmosis"))
	})

	t.Run("priority equal to sentinel", func(t *testing.T) {
		_, err := NewClassifier(map[string]int{"Solana": -99}, -99)
		assert.EqualError(t, err, "priority -99 of network Solana must be greater than unknown priority -99")
	})

	t.Run("priority below sentinel", func(t *testing.T) {
		_, err := NewClassifier(map[string]int{"Solana": -100}, -99)
		assert.Error(t, err)
	})

	t.Run("empty network name", func(t *testing.T) {
		_, err := NewClassifier(map[string]int{"": 1}, -99)
		assert.Error(t, err)
	})

	t.Run("empty table", func(t *testing.T) {
		c, err := NewClassifier(nil, -1)
		require.NoError(t, err)
		assert.Equal(t, -1, c.PriorityOf("Osmosis"))
	})
}
