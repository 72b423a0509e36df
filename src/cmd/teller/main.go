package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jvalente2019/teller/src/console"
	"github.com/jvalente2019/teller/src/eventconsumers"
	"github.com/jvalente2019/teller/src/eventpubsub"
	"github.com/jvalente2019/teller/src/models"
	"github.com/jvalente2019/teller/src/services"
	"github.com/jvalente2019/teller/src/utils"
)

type RunArgs struct {
	GoEnv    string
	SeedFile string
}

var runCmd = &cobra.Command{
	Use:   "teller",
	Short: "Interactive console for validated bank accounts",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		seedFile, err := cmd.Flags().GetString("seed")
		if err != nil {
			log.Fatalf("error getting seed: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:    goEnv,
			SeedFile: seedFile,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := sync.WaitGroup{}

	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return fmt.Errorf("Run: failed to load environment variables: %w", err)
	}

	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(level)
	}

	eventpubsub.Init()

	counter := models.NewCounter()
	vault := models.NewVault(counter)

	auditWorker := eventconsumers.NewAuditWorkerClient(&wg)
	auditWorker.Start(ctx)

	if args.SeedFile != "" {
		config, err := services.LoadSeedConfig(args.SeedFile)
		if err != nil {
			return fmt.Errorf("Run: failed to load seed config: %w", err)
		}

		services.ApplySeed(vault, config)
	}

	log.Info("Main: init complete")

	session := console.NewSession(vault, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("session ended with error: %v", err)
		}
	case <-stop:
		log.Info("shutdown signal received")
	}

	cancel()
	wg.Wait()
	eventpubsub.Drain()

	vault.CloseAll()

	log.Info("Main: gracefully stopped!")

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("seed", "", "Optional YAML file of accounts to open at startup.")

	runCmd.Execute()
}
