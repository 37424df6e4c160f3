package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/bootstrap"
)

func (c *cli) providersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider"},
		Short:   "Manage text-generation providers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List providers and the active selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				out := s.UseCase.Providers(cmd.Context())
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ACTIVE\tID\tNAME\tMODEL\tENDPOINT\tCREDENTIAL\tAVAILABLE")
				for _, p := range out.Providers {
					active := ""
					if p.Active {
						active = "*"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%t\n",
						active, p.ID, p.DisplayName, p.ModelID, p.Endpoint, p.HasCredential, p.Available)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if out.LastError != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "\nLast error: %s\n", out.LastError)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(c.configureCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [id]",
		Short: "Forget a provider's configuration and credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				if err := s.UseCase.RemoveProvider(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "test [id]",
		Short: "Run one round trip against the stored configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				err := s.UseCase.TestConnection(cmd.Context(), assistant.ProviderInput{ProviderID: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: connection OK\n", args[0])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "models [id]",
		Short: "List models offered by a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				models := s.UseCase.DiscoverModels(cmd.Context(), assistant.ProviderInput{ProviderID: args[0]})
				if len(models) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No models found")
					return nil
				}
				for _, m := range models {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "use [id]",
		Short: "Select the active provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				active := s.UseCase.SetActive(cmd.Context(), args[0])
				if active != args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is not available, using %s\n", args[0], active)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Active provider: %s\n", active)
				return nil
			})
		},
	})

	return cmd
}

func (c *cli) configureCmd() *cobra.Command {
	var in assistant.ProviderInput

	cmd := &cobra.Command{
		Use:   "configure [id]",
		Short: "Store endpoint, model and credential for a provider",
		Long: `Stores the provider configuration. The credential goes to the system
keychain; omitting --credential keeps the one already stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ProviderID = args[0]
			return c.withStack(cmd, func(s *bootstrap.Stack) error {
				if err := s.UseCase.ConfigureProvider(cmd.Context(), in); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Configured %s\n", in.ProviderID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Endpoint, "endpoint", "", "Backend URL")
	cmd.Flags().StringVar(&in.ModelID, "model", "", "Model identifier")
	cmd.Flags().StringVar(&in.Credential, "credential", "", "API key or token")
	return cmd
}
