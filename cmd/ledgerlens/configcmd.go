package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fennwick/ledgerlens/internal/cli"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the Craft API configuration",
	}

	cmd.AddCommand(setConfigCmd())
	cmd.AddCommand(showConfigCmd())
	cmd.AddCommand(clearConfigCmd())

	return cmd
}

func setConfigCmd() *cobra.Command {
	var (
		baseURL      string
		apiKey       string
		collectionID string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set Craft API connection details",
		Long: `Store the Craft API base URL, API key and collection ID. The collection ID
is optional; when absent, the most expense-like collection is discovered
automatically on each fetch.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cfg, err := store.GetCraftConfig(ctx)
			if err != nil {
				return err
			}

			// Only overwrite fields the user provided.
			if cmd.Flags().Changed("base-url") {
				cfg.APIBaseURL = baseURL
			}
			if cmd.Flags().Changed("api-key") {
				cfg.APIKey = apiKey
			}
			if cmd.Flags().Changed("collection-id") {
				cfg.CollectionID = collectionID
			}

			if err := store.SaveCraftConfig(ctx, cfg); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Craft API configuration saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Craft API base URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Craft API key (leave empty for public access)")
	cmd.Flags().StringVar(&collectionID, "collection-id", "", "collection ID (optional, auto-discovered when empty)")

	return cmd
}

func showConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored Craft API configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cfg, err := store.GetCraftConfig(ctx)
			if err != nil {
				return err
			}

			if cfg.APIBaseURL == "" {
				fmt.Println(cli.InfoStyle.Render("No Craft API configuration stored. Use 'ledgerlens config set' to add one."))
				return nil
			}

			fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Base URL:"), cfg.APIBaseURL)
			fmt.Printf("%s %s\n", cli.SubtleStyle.Render("API key:"), maskKey(cfg.APIKey))
			collection := cfg.CollectionID
			if collection == "" {
				collection = cli.SubtleStyle.Render("(auto-discovered)")
			}
			fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Collection:"), collection)
			return nil
		},
	}
}

func clearConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored Craft API configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearCraftConfig(ctx); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Craft API configuration cleared"))
			return nil
		},
	}
}

// maskKey hides the middle of an API key for display.
func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 8:
		return "********"
	default:
		return key[:4] + "..." + key[len(key)-4:]
	}
}
