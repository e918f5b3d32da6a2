package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/admission"
	"github.com/hms/hms/internal/platform/console"
	"github.com/hms/hms/internal/platform/logging"
	"github.com/hms/hms/internal/platform/notification"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital",
		Short: "Hospital admission and billing console",
	}

	rootCmd.AddCommand(consoleCmd())
	rootCmd.AddCommand(admitCmd())
	rootCmd.AddCommand(tariffCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive admission menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			svc := newAdmissionService(cfg, logger, out)

			logger.Info().Str("env", cfg.Env).Msg("console session started")
			err = console.NewSession(cmd.InOrStdin(), out, svc, logger, cfg.JSONOutput()).Run()
			logger.Info().Msg("console session ended")
			return err
		},
	}
}

func admitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admit",
		Short: "Admit one patient from flags and print the bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetInt("id")
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetInt("age")
			contact, _ := cmd.Flags().GetString("contact")
			symptoms, _ := cmd.Flags().GetString("symptoms")
			category, _ := cmd.Flags().GetString("category")

			c, err := admission.ParseCategory(category)
			if err != nil {
				return err
			}

			cfg, logger, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			svc := newAdmissionService(cfg, logger, out)

			p := &admission.Patient{
				ID:            id,
				Name:          name,
				Age:           age,
				ContactNumber: contact,
				Symptoms:      symptoms,
				Category:      c,
			}
			return console.Admit(out, svc, p, cfg.JSONOutput())
		},
	}
	cmd.Flags().Int("id", 0, "Patient identifier")
	cmd.Flags().String("name", "", "Patient name")
	cmd.Flags().Int("age", 0, "Patient age")
	cmd.Flags().String("contact", "", "Contact number")
	cmd.Flags().String("symptoms", "", "Symptoms or notes")
	cmd.Flags().String("category", "", "Service category (General, Emergency, Insurance, ICU, Diagnostic or 1-5)")
	return cmd
}

func tariffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tariff",
		Short: "Show base bills and billing strategies per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.RenderTariff(cmd.OutOrStdout())
		},
	}
}

func setup(logOut io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logging.New(cfg.Env, cfg.LogLevel, logOut), nil
}

// newAdmissionService wires the notification channel: the reception desk
// hears about admissions, accounts hears about bills, and every event is
// logged. JSON output keeps stdout for the document alone.
func newAdmissionService(cfg *config.Config, logger zerolog.Logger, out io.Writer) *admission.Service {
	ch := notification.NewChannel()
	if !cfg.JSONOutput() {
		ch.Subscribe(notification.KindAdmission, notification.PrefixWriter(out, cfg.ReceptionPrefix))
		ch.Subscribe(notification.KindBilling, notification.PrefixWriter(out, cfg.AccountsPrefix))
	}
	ch.Subscribe(notification.KindAdmission, notification.LogObserver(logger))
	ch.Subscribe(notification.KindBilling, notification.LogObserver(logger))
	return admission.NewService(ch)
}
