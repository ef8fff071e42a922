package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/config"
	"nutritrack/utils"
)

var tokenTTL = utils.TokenTTL

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token signed with JWT_SECRET",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		tok, err := utils.GenerateJWT([]byte(cfg.JWTSecret), utils.OwnerSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", utils.TokenTTL, "token lifetime")
}
