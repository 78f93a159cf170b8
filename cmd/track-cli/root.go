package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BearBump/TrackLink/config"
	"github.com/BearBump/TrackLink/internal/bootstrap"
	"github.com/BearBump/TrackLink/internal/models"
	"github.com/BearBump/TrackLink/internal/services/trackings"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "track-cli",
		Short:        "Look up tracking numbers and order references from the terminal",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv("configPath"), "path to YAML config (optional)")

	root.AddCommand(newLookupCmd(&cfgFile), newVersionCmd())
	return root
}

func newLookupCmd(cfgFile *string) *cobra.Command {
	var trackingNumber, orderReference string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Run one lookup and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			log := bootstrap.NewLogger(cfg.Log, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := trackings.New(bootstrap.NewGateway(cfg.Provider, log), nil, "")
			vm := svc.Lookup(ctx, models.TrackingSubmission{
				TrackingNumber:      trackingNumber,
				OrderReference:      orderReference,
				SubmissionAttempted: true,
			})

			out, err := json.MarshalIndent(vm, "", "  ")
			if err != nil {
				return errors.Wrap(err, "marshal result")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVar(&trackingNumber, "tracking-number", "", "tracking number (letters and digits)")
	cmd.Flags().StringVar(&orderReference, "order-reference", "", "order reference to resolve via the provider")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of track-cli",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
