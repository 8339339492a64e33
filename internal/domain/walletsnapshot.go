package domain

import "time"

// WalletSnapshot is the state published after each refresh.
type WalletSnapshot struct {
	RefreshID string                  `json:"refresh_id"`
	Timestamp time.Time               `json:"ts"`
	Prices    []ReconciledPriceRecord `json:"prices"`
	Rows      []WalletRow             `json:"rows"`
}
