package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/jvalente2019/teller/src/eventpubsub"
	"github.com/jvalente2019/teller/src/models"
)

func newTestVault() *models.Vault {
	eventpubsub.Init()

	return models.NewVault(models.NewCounter())
}

// runScript feeds script to a fresh session and returns everything it wrote.
// Scripts may end with option 5 or simply run out of input; both quit.
func runScript(t *testing.T, vault *models.Vault, script string) string {
	t.Helper()

	out := &bytes.Buffer{}
	session := NewSession(vault, strings.NewReader(script), out)

	require.NoError(t, session.Run(context.Background()))

	return out.String()
}

func TestSessionMenu(t *testing.T) {
	t.Run("prints the live count", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "1\n5\n")

		require.Contains(t, display, "Accounts currently in memory: 0")
		require.Contains(t, display, "Goodbye!")
	})

	t.Run("quits on option 5", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "5\n")

		require.Contains(t, display, "Goodbye!")
	})

	t.Run("quits when input runs out", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "")

		require.Contains(t, display, "Goodbye!")
	})

	t.Run("rejects an unknown option", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "9\nfoo\n5\n")

		require.Equal(t, 2, strings.Count(display, "Unknown option."))
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		vault := newTestVault()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		session := NewSession(vault, strings.NewReader("1\n"), &bytes.Buffer{})

		require.ErrorIs(t, session.Run(ctx), context.Canceled)
	})
}

func TestSessionCreate(t *testing.T) {
	t.Run("creates an account and reports the count around it", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "2\n10 20\n5\n")

		require.Contains(t, display, "Count before create: 0")
		require.Contains(t, display, "Created: Account{ available: $10.00, present: $20.00 }")
		require.Contains(t, display, "Count after create: 1")
		require.Equal(t, int64(1), vault.Live())
	})

	t.Run("degrades an invalid pair to defaults and logs the violation", func(t *testing.T) {
		hook := logtest.NewGlobal()
		defer hook.Reset()

		vault := newTestVault()

		display := runScript(t, vault, "2\n1 20\n5\n")

		require.Contains(t, display, "Created: Account{ available: $5.00, present: $5.00 }")
		require.Contains(t, display, "Count after create: 1")

		var warned bool
		for _, entry := range hook.AllEntries() {
			if entry.Level == log.WarnLevel && strings.Contains(entry.Message, "available balance below minimum $5.00") {
				warned = true
			}
		}
		require.True(t, warned)
	})

	t.Run("reports malformed input and creates nothing", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "2\nabc def\n5\n")

		require.Contains(t, display, "failed to convert 'abc' to float")
		require.Equal(t, 0, vault.Len())
		require.Equal(t, int64(0), vault.Live())
	})
}

func TestSessionUpdate(t *testing.T) {
	t.Run("commits a valid update", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "3\n0\n15 30\n5\n")

		require.Contains(t, display, "Before update: Account{ available: $10.00, present: $20.00 }")
		require.Contains(t, display, "Update OK. After update: Account{ available: $15.00, present: $30.00 }")
	})

	t.Run("blocks an invalid update and leaves the account unchanged", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "3\n0\n1 20\n5\n")

		require.Contains(t, display, "[Update blocked] available balance below minimum $5.00 -> account left unchanged.")
		require.Contains(t, display, "After failed update: Account{ available: $10.00, present: $20.00 }")

		account, err := vault.Get(0)
		require.NoError(t, err)
		require.Equal(t, 10.00, account.Available())
		require.Equal(t, 20.00, account.Present())
	})

	t.Run("reports malformed input and leaves the account untouched", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "3\n0\nabc def\n5\n")

		require.Contains(t, display, "failed to convert 'abc' to float")

		account, err := vault.Get(0)
		require.NoError(t, err)
		require.Equal(t, 10.00, account.Available())
		require.Equal(t, 20.00, account.Present())
	})

	t.Run("explains the update ordering on a doubly bad pair", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "3\n0\n2 1\n5\n")

		require.Contains(t, display, "[Update blocked] available balance below minimum $5.00")
	})

	t.Run("asks for an account first when the vault is empty", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "3\n5\n")

		require.Contains(t, display, "No accounts yet. Create one first (option 2).")
	})

	t.Run("rejects a bad index", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "3\n99\n5\n")

		require.Contains(t, display, "Invalid index.")
	})

	t.Run("rejects a non-numeric index", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "3\nfirst\n5\n")

		require.Contains(t, display, "Invalid index.")
	})
}

func TestSessionList(t *testing.T) {
	t.Run("lists every account", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)
		vault.Open(15.00, 30.00)

		display := runScript(t, vault, "4\n5\n")

		require.Contains(t, display, "$10.00")
		require.Contains(t, display, "$30.00")
	})

	t.Run("reports an empty vault", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "4\n5\n")

		require.Contains(t, display, "(no accounts)")
	})
}

func TestSessionSummary(t *testing.T) {
	t.Run("prints aggregate balances", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)
		vault.Open(20.00, 40.00)

		display := runScript(t, vault, "6\n5\n")

		require.Contains(t, display, "Accounts: 2")
		require.Contains(t, display, "Available: total $30.00, mean $15.00, min $10.00, max $20.00")
		require.Contains(t, display, "Present: total $60.00, mean $30.00, min $20.00, max $40.00")
	})

	t.Run("asks for an account first when the vault is empty", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "6\n5\n")

		require.Contains(t, display, "No accounts yet. Create one first (option 2).")
	})
}

func TestSessionClose(t *testing.T) {
	t.Run("closes the chosen account", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)
		vault.Open(15.00, 30.00)

		display := runScript(t, vault, "7\n0\n5\n")

		require.Contains(t, display, "Closed: Account{ available: $10.00, present: $20.00 }")
		require.Contains(t, display, "Accounts remaining in memory: 1")

		require.Equal(t, 1, vault.Len())
		require.Equal(t, int64(1), vault.Live())

		remaining, err := vault.Get(0)
		require.NoError(t, err)
		require.Equal(t, 15.00, remaining.Available())
	})

	t.Run("asks for an account first when the vault is empty", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "7\n5\n")

		require.Contains(t, display, "No accounts yet. Create one first (option 2).")
	})
}

func TestSessionDuplicate(t *testing.T) {
	t.Run("appends a copy of the chosen account", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "8\n0\n5\n")

		require.Contains(t, display, "Duplicated: Account{ available: $10.00, present: $20.00 }")
		require.Contains(t, display, "Count after duplicate: 2")

		require.Equal(t, 2, vault.Len())
		require.Equal(t, int64(2), vault.Live())

		first, err := vault.Get(0)
		require.NoError(t, err)
		second, err := vault.Get(1)
		require.NoError(t, err)
		require.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("rejects a bad index", func(t *testing.T) {
		vault := newTestVault()
		vault.Open(10.00, 20.00)

		display := runScript(t, vault, "8\n7\n5\n")

		require.Contains(t, display, "Invalid index.")
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("live count tracks creates minus closes", func(t *testing.T) {
		vault := newTestVault()

		display := runScript(t, vault, "2\n10 20\n2\n30 40\n2\n6 7\n7\n1\n1\n5\n")

		require.Contains(t, display, "Count after create: 3")
		require.Contains(t, display, "Accounts currently in memory: 2")
		require.Equal(t, int64(2), vault.Live())
	})
}
