package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"perlhq/critic/pkg/critic"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List registered policies",
	Long:  `List every registered policy with its default severity and enabled state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		for _, p := range critic.DefaultRegistry.All() {
			state := "enabled"
			if !cfg.PolicyEnabled(p.Name()) {
				state = "disabled"
			}
			sev := p.DefaultSeverity()
			if override, ok := cfg.SeverityOverrides()[p.Name()]; ok {
				sev = override
			}
			fmt.Printf("%-60s severity %d (%s), %s\n", p.Name(), sev, sev, state)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policiesCmd)
}
