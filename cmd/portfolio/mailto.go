package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tperticaro.dev/internal/services"
)

var mailtoForm services.ContactForm

var mailtoCmd = &cobra.Command{
	Use:   "mailto",
	Short: "Print the mailto URI the contact form would open",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), newContactService().Mailto(mailtoForm))
		return nil
	},
}

func init() {
	mailtoCmd.Flags().StringVar(&mailtoForm.Name, "name", "", "sender name")
	mailtoCmd.Flags().StringVar(&mailtoForm.Email, "email", "", "sender email")
	mailtoCmd.Flags().StringVar(&mailtoForm.Message, "message", "", "message body")
}
