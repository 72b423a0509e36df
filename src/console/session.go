package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jvalente2019/teller/src/eventmodels"
	pubsub "github.com/jvalente2019/teller/src/eventpubsub"
	"github.com/jvalente2019/teller/src/models"
	"github.com/jvalente2019/teller/src/utils"
)

// Session drives the interactive account menu over one reader/writer pair.
// All account mutation happens synchronously on the session goroutine; the
// events it publishes are observational.
type Session struct {
	vault  *models.Vault
	reader *bufio.Reader
	out    io.Writer
}

func NewSession(vault *models.Vault, in io.Reader, out io.Writer) *Session {
	return &Session{
		vault:  vault,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, "\n=== Bank Account Test Menu ===\n"+
		"1) Print number of accounts in memory\n"+
		"2) Create an account (you choose values)\n"+
		"3) Try to update an existing account\n"+
		"4) List all accounts\n"+
		"5) Quit\n"+
		"6) Show balance summary\n"+
		"7) Close an account\n"+
		"8) Duplicate an account\n"+
		"Select: ")
}

// Run loops the menu until quit, end of input, or ctx cancellation.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.printMenu()

		var choice string
		if err := utils.ReadLine(s.reader, &choice); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return nil
			}

			return fmt.Errorf("Session.Run: failed to read menu choice: %w", err)
		}

		option, err := strconv.Atoi(strings.TrimSpace(choice))
		if err != nil {
			fmt.Fprintln(s.out, "Unknown option.")
			continue
		}

		switch option {
		case 1:
			s.handleLiveCount()
		case 2:
			s.handleCreate()
		case 3:
			s.handleUpdate()
		case 4:
			s.handleList()
		case 5:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		case 6:
			s.handleSummary()
		case 7:
			s.handleClose()
		case 8:
			s.handleDuplicate()
		default:
			fmt.Fprintln(s.out, "Unknown option.")
		}
	}
}

func (s *Session) handleLiveCount() {
	fmt.Fprintf(s.out, "Accounts currently in memory: %d\n", s.vault.Live())
}

func (s *Session) handleCreate() {
	fmt.Fprint(s.out, "Enter available and present balances: ")

	available, present, err := s.readAmountPair()
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Count before create: %d\n", s.vault.Live())

	account := s.vault.Open(available, present)

	fmt.Fprintf(s.out, "Created: %s\n", account)
	fmt.Fprintf(s.out, "Count after create: %d\n", s.vault.Live())

	pubsub.Publish("Session", pubsub.AccountOpenedEvent, eventmodels.AccountOpenedEvent{
		AccountID: account.ID(),
		Available: account.Available(),
		Present:   account.Present(),
		Live:      s.vault.Live(),
	})
}

func (s *Session) handleUpdate() {
	if s.vault.Len() == 0 {
		fmt.Fprintln(s.out, "No accounts yet. Create one first (option 2).")
		return
	}

	account, err := s.chooseAccount()
	if err != nil {
		fmt.Fprintln(s.out, "Invalid index.")
		return
	}

	fmt.Fprint(s.out, "Enter NEW available and present balances: ")

	available, present, err := s.readAmountPair()
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Before update: %s\n", account)

	prevAvailable, prevPresent := account.Available(), account.Present()

	if err := account.SetBalances(available, present); err != nil {
		fmt.Fprintf(s.out, "[Update blocked] %v -> account left unchanged.\n", err)
		fmt.Fprintf(s.out, "After failed update: %s\n", account)

		pubsub.Publish("Session", pubsub.UpdateRejectedEvent, eventmodels.UpdateRejectedEvent{
			AccountID: account.ID(),
			Kind:      models.KindOf(err),
			Reason:    err.Error(),
			Available: account.Available(),
			Present:   account.Present(),
		})

		return
	}

	fmt.Fprintf(s.out, "Update OK. After update: %s\n", account)

	pubsub.Publish("Session", pubsub.AccountUpdatedEvent, eventmodels.AccountUpdatedEvent{
		AccountID:     account.ID(),
		PrevAvailable: prevAvailable,
		PrevPresent:   prevPresent,
		Available:     account.Available(),
		Present:       account.Present(),
	})
}

func (s *Session) handleList() {
	fmt.Fprint(s.out, s.vault.String())
}

func (s *Session) handleSummary() {
	summary, err := s.vault.Summary()
	if err != nil {
		fmt.Fprintln(s.out, "No accounts yet. Create one first (option 2).")
		return
	}

	fmt.Fprintln(s.out, summary)
}

func (s *Session) handleClose() {
	if s.vault.Len() == 0 {
		fmt.Fprintln(s.out, "No accounts yet. Create one first (option 2).")
		return
	}

	index, err := s.readIndex()
	if err != nil {
		fmt.Fprintln(s.out, "Invalid index.")
		return
	}

	account, err := s.vault.CloseAccount(index)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid index.")
		return
	}

	fmt.Fprintf(s.out, "Closed: %s\n", account)
	fmt.Fprintf(s.out, "Accounts remaining in memory: %d\n", s.vault.Live())

	pubsub.Publish("Session", pubsub.AccountClosedEvent, eventmodels.AccountClosedEvent{
		AccountID: account.ID(),
		Live:      s.vault.Live(),
	})
}

func (s *Session) handleDuplicate() {
	if s.vault.Len() == 0 {
		fmt.Fprintln(s.out, "No accounts yet. Create one first (option 2).")
		return
	}

	index, err := s.readIndex()
	if err != nil {
		fmt.Fprintln(s.out, "Invalid index.")
		return
	}

	account, err := s.vault.Duplicate(index)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid index.")
		return
	}

	fmt.Fprintf(s.out, "Duplicated: %s\n", account)
	fmt.Fprintf(s.out, "Count after duplicate: %d\n", s.vault.Live())

	pubsub.Publish("Session", pubsub.AccountOpenedEvent, eventmodels.AccountOpenedEvent{
		AccountID: account.ID(),
		Available: account.Available(),
		Present:   account.Present(),
		Live:      s.vault.Live(),
	})
}

func (s *Session) readAmountPair() (float64, float64, error) {
	var line string
	if err := utils.ReadLine(s.reader, &line); err != nil {
		return 0, 0, fmt.Errorf("failed to read balances: %v", err)
	}

	return utils.ParseAmountPair(line)
}

func (s *Session) chooseAccount() (*models.Account, error) {
	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	return s.vault.Get(index)
}

func (s *Session) readIndex() (int, error) {
	fmt.Fprintf(s.out, "Choose account index [0..%d]: ", s.vault.Len()-1)

	var line string
	if err := utils.ReadLine(s.reader, &line); err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(line))
}
