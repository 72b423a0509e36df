package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Vault is the session's collection of open accounts, addressed by index in
// creation order.
type Vault struct {
	counter  *Counter
	accounts []*Account
}

func NewVault(counter *Counter) *Vault {
	return &Vault{counter: counter}
}

// Open appends a new account at the requested balances, degrading to the
// default minimums when the pair is invalid.
func (v *Vault) Open(available float64, present float64) *Account {
	account := NewAccountWithBalances(v.counter, available, present)
	v.accounts = append(v.accounts, account)

	return account
}

// OpenDefault appends a new account at the default minimums.
func (v *Vault) OpenDefault() *Account {
	account := NewAccount(v.counter)
	v.accounts = append(v.accounts, account)

	return account
}

func (v *Vault) Get(index int) (*Account, error) {
	if index < 0 || index >= len(v.accounts) {
		return nil, ErrNoSuchAccount
	}

	return v.accounts[index], nil
}

// Duplicate clones the account at index and appends the copy.
func (v *Vault) Duplicate(index int) (*Account, error) {
	account, err := v.Get(index)
	if err != nil {
		return nil, err
	}

	copied := account.Clone()
	v.accounts = append(v.accounts, copied)

	return copied, nil
}

// CloseAccount removes the account at index and releases its counter slot.
// Later accounts shift down one index.
func (v *Vault) CloseAccount(index int) (*Account, error) {
	account, err := v.Get(index)
	if err != nil {
		return nil, err
	}

	v.accounts = append(v.accounts[:index], v.accounts[index+1:]...)
	account.Close()

	return account, nil
}

// CloseAll releases every account still held by the vault.
func (v *Vault) CloseAll() {
	for _, account := range v.accounts {
		account.Close()
	}

	v.accounts = nil
}

func (v *Vault) Len() int {
	return len(v.accounts)
}

// Accounts returns a snapshot of the collection in index order.
func (v *Vault) Accounts() []*Account {
	out := make([]*Account, len(v.accounts))
	copy(out, v.accounts)

	return out
}

// Live reports the process-wide count of open accounts, including any opened
// outside this vault.
func (v *Vault) Live() int64 {
	return v.counter.Live()
}

func (v *Vault) String() string {
	if len(v.accounts) == 0 {
		return "(no accounts)\n"
	}

	display := &strings.Builder{}
	printer := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Index", "Account", "Available", "Present"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for index, account := range v.accounts {
		available := fmt.Sprintf("$%s", printer.Sprintf("%.2f", account.Available()))
		present := fmt.Sprintf("$%s", printer.Sprintf("%.2f", account.Present()))

		table.Append([]string{fmt.Sprintf("%d", index), account.ID().String()[:8], available, present})
	}

	table.Render()

	return display.String()
}
