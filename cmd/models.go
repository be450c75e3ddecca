package cmd

import (
	"CSChat/be/internal/chatbot"
	"fmt"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Print the model routing table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tPROVIDER\tUPSTREAM")
		for _, m := range chatbot.Models() {
			id := m.ID
			if m.Default {
				id += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", id, m.Provider.DisplayName(), m.UpstreamModel)
		}
		fmt.Fprintf(w, "*\t%s\t%s\n", chatbot.Route("").Provider.DisplayName(), chatbot.Route("").UpstreamModel)
		return w.Flush()
	},
}
