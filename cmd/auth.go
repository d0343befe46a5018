package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calsched/calsched/internal/google"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth [authorization-code]",
		Short: "Authorize calsched to access your Google Calendar",
		Long: `Authorize calsched to access your Google Calendar via OAuth.

Run without arguments to print the authorization URL. Visit it, grant
calendar access, then run the command again with the authorization code
to store the token. The cached token is refreshed automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if google.HasToken() {
					fmt.Println("A Google OAuth token is already cached. To re-authorize, visit:")
				} else {
					fmt.Println("Visit this URL in your browser to authorize calendar access:")
				}
				fmt.Printf("\n  %s\n\nThen run: calsched auth <authorization-code>\n", google.GetAuthURL())
				return nil
			}

			if err := google.SaveToken(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Println("Authorization successful. Token cached for future use.")
			return nil
		},
	}
	return cmd
}
