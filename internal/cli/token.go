package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/crypto"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the stats API",
		Long:  "token prints a JWT that grants read access to /api/v1/stats. It is signed with PASSFORGE_JWT_SECRET (or JWT_SECRET), which must match the server's JWT_SECRET.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			prefs, err := loadPreferences(cmd, root)
			if err != nil {
				return err
			}

			token, err := crypto.GenerateToken(subject, []string{crypto.ScopeStatsRead}, prefs.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
