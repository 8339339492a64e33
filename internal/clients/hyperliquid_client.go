// Package clients builds exchange SDK clients used by the price sources.
package clients

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	hyperliquid "github.com/sonirico/go-hyperliquid"
)

// NewHyperliquidInfo returns a read-only Info client for the given API URL.
// The SDK builds Info through an Exchange, which needs a signer; prices are public,
// so a throwaway key is generated when privateKeyHex is empty.
func NewHyperliquidInfo(ctx context.Context, privateKeyHex string, baseURL string) (*hyperliquid.Info, error) {
	var (
		privateKey *ecdsa.PrivateKey
		err        error
	)
	if privateKeyHex == "" {
		privateKey, err = crypto.GenerateKey()
	} else {
		key := privateKeyHex
		if len(key) >= 2 && (key[:2] == "0x" || key[:2] == "0X") {
			key = key[2:]
		}
		privateKey, err = crypto.HexToECDSA(key)
	}
	if err != nil {
		return nil, err
	}

	pub, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("error casting public key to ECDSA")
	}
	accountAddr := crypto.PubkeyToAddress(*pub).Hex()

	ex := hyperliquid.NewExchange(
		ctx,
		privateKey,
		baseURL,
		nil,
		"",
		accountAddr,
		nil,
	)

	return ex.Info(), nil
}
