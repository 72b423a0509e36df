package models

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// BalanceStats aggregates one balance column across a vault.
type BalanceStats struct {
	Total float64
	Mean  float64
	Min   float64
	Max   float64
}

func (s BalanceStats) String() string {
	return fmt.Sprintf("total $%.2f, mean $%.2f, min $%.2f, max $%.2f", s.Total, s.Mean, s.Min, s.Max)
}

// VaultSummary reports aggregate balances over every account in a vault.
type VaultSummary struct {
	Accounts  int
	Available BalanceStats
	Present   BalanceStats
}

func (s *VaultSummary) String() string {
	return fmt.Sprintf("Accounts: %d\nAvailable: %s\nPresent: %s", s.Accounts, s.Available, s.Present)
}

func aggregate(values []float64) (BalanceStats, error) {
	var out BalanceStats
	var err error

	if out.Total, err = stats.Sum(values); err != nil {
		return out, fmt.Errorf("failed to calculate total: %w", err)
	}

	if out.Mean, err = stats.Mean(values); err != nil {
		return out, fmt.Errorf("failed to calculate mean: %w", err)
	}

	if out.Min, err = stats.Min(values); err != nil {
		return out, fmt.Errorf("failed to calculate min: %w", err)
	}

	if out.Max, err = stats.Max(values); err != nil {
		return out, fmt.Errorf("failed to calculate max: %w", err)
	}

	return out, nil
}

// Summary computes aggregate stats over the vault's accounts. An empty vault
// returns ErrVaultEmpty.
func (v *Vault) Summary() (*VaultSummary, error) {
	if len(v.accounts) == 0 {
		return nil, ErrVaultEmpty
	}

	available := make([]float64, 0, len(v.accounts))
	present := make([]float64, 0, len(v.accounts))

	for _, account := range v.accounts {
		available = append(available, account.Available())
		present = append(present, account.Present())
	}

	summary := &VaultSummary{Accounts: len(v.accounts)}

	var err error
	if summary.Available, err = aggregate(available); err != nil {
		return nil, fmt.Errorf("Vault.Summary: available balances: %w", err)
	}

	if summary.Present, err = aggregate(present); err != nil {
		return nil, fmt.Errorf("Vault.Summary: present balances: %w", err)
	}

	return summary, nil
}
