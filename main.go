package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jaskaranbir/bank-ledger/config"
	"github.com/Jaskaranbir/bank-ledger/domain/ledger"
	"github.com/Jaskaranbir/bank-ledger/logger"
	"github.com/Jaskaranbir/bank-ledger/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bank-ledger",
		Short:        "Interactive ledger over typed bank-accounts with snapshot-persistence",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	err := rootCmd.Execute()
	if err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "error loading config")
	}

	store, err := storage.NewFileStore(&storage.FileStoreCfg{
		Log:      logger.NewLogrusLogger("FileStore"),
		FilePath: cfg.DataFilePath,
	})
	if err != nil {
		return errors.Wrap(err, "error creating file-store")
	}

	ldgr, err := ledger.New(&ledger.Cfg{
		Log:   logger.NewLogrusLogger("Ledger"),
		Store: store,
	})
	if err != nil {
		return errors.Wrap(err, "error creating ledger")
	}

	m, err := newMenu(&menuCfg{
		Log:    logger.NewLogrusLogger("Menu"),
		Ledger: ldgr,
		In:     os.Stdin,
		Out:    os.Stdout,
	})
	if err != nil {
		return errors.Wrap(err, "error creating menu")
	}
	return m.run()
}
