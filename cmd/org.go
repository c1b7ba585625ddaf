package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kirksw/ezorg/internal/config"
	"github.com/kirksw/ezorg/internal/utils"
	"github.com/spf13/cobra"
)

var orgCmd = &cobra.Command{
	Use:   "org <org>",
	Short: "Show organization metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrg,
}

var showReposURL bool

func init() {
	rootCmd.AddCommand(orgCmd)

	orgCmd.Flags().BoolVar(&showReposURL, "repos-url", false, "print only the repository list URL")
}

func runOrg(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	name, err := utils.ParseOrgName(args[0])
	if err != nil {
		return err
	}

	client := newOrgClient(cfg, name)
	out := cmd.OutOrStdout()

	if showReposURL {
		url, err := client.PublicReposURL()
		if err != nil {
			return fmt.Errorf("failed to get repos url for %s: %w", name, err)
		}
		fmt.Fprintln(out, url)
		return nil
	}

	org, err := client.Org()
	if err != nil {
		return fmt.Errorf("failed to fetch org %s: %w", name, err)
	}

	data, err := json.MarshalIndent(org, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode org metadata: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
