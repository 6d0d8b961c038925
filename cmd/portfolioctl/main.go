// Command portfolioctl operates on the configured slot storage directly,
// through the same store the API server uses.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/persistence"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	configDir string
	verbose   bool
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Manage the stored portfolio document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&a.configDir, "config-dir", "c", ".", "Directory holding config.yaml and .env")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log store activity to stderr")

	cmd.AddCommand(
		a.exportCmd(),
		a.importCmd(),
		a.resetCmd(),
		a.profilesCmd(),
		a.activateCmd(),
		hashPasswordCmd(),
	)
	return cmd
}

// withStore loads the store from the configured storage, runs fn and
// releases the storage.
func (a *app) withStore(ctx context.Context, fn func(*portfolioUC.Store) error) error {
	cfg, err := config.LoadConfig(a.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewNopLogger()
	if a.verbose {
		log = logger.NewZapLogger("development")
	}

	storage, closeStorage, err := persistence.NewStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	store := portfolioUC.NewStore(storage, event.NopPublisher{}, log)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}
	return fn(store)
}

func (a *app) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole document as indented JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(s *portfolioUC.Store) error {
				doc, err := s.Export(cmd.Context())
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
					return err
				}
				return os.WriteFile(output, []byte(doc), 0o644)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the document with an exported or legacy JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return a.withStore(cmd.Context(), func(s *portfolioUC.Store) error {
				if err := s.ImportDocument(cmd.Context(), raw); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d profile(s), active %s\n",
					len(s.ListProfiles()), s.ActiveProfileID())
				return nil
			})
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace every profile with the built-in defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset discards every profile, pass --yes to confirm")
			}
			return a.withStore(cmd.Context(), func(s *portfolioUC.Store) error {
				if err := s.ResetToDefault(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "portfolio reset to defaults")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func (a *app) profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List domain profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(s *portfolioUC.Store) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ACTIVE\tID\tDOMAIN")
				for _, p := range s.ListProfiles() {
					mark := ""
					if p.IsActive {
						mark = "*"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", mark, p.ID, p.DomainName)
				}
				return w.Flush()
			})
		},
	}
}

func (a *app) activateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <profile-id>",
		Short: "Make a profile the publicly rendered one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(s *portfolioUC.Store) error {
				return s.SetActiveProfile(cmd.Context(), args[0])
			})
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash for auth.admin_password_hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
