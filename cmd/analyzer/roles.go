package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resume-analyzer/internal/catalog"
)

var rolesCommand = &cobra.Command{
	Use:   "roles",
	Short: "List the roles available for targeted analysis",
	RunE:  runRolesCmd,
}

var rolesVerbose bool

func init() {
	rolesCommand.Flags().BoolVarP(&rolesVerbose, "verbose", "v", false, "Include core skills and market data per role")

	rootCmd.AddCommand(rolesCommand)
}

func runRolesCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, role := range catalog.Roles() {
		if !rolesVerbose {
			fmt.Fprintln(out, role.Name)
			continue
		}
		fmt.Fprintf(out, "%s\n", role.Name)
		fmt.Fprintf(out, "  Core skills: %s\n", strings.Join(role.CoreSkills, ", "))
		fmt.Fprintf(out, "  Frameworks:  %s\n", strings.Join(role.Frameworks, ", "))
		fmt.Fprintf(out, "  Salary:      %s\n", role.SalaryRange)
		fmt.Fprintf(out, "  Outlook:     %s\n", role.GrowthOutlook)
	}
	return nil
}
