package cmd

import (
	"fmt"
	"os"
	"time"

	"heartbeat/internal/chance"
	"heartbeat/internal/message"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var msgCopy bool

func init() {
	rootCmd.AddCommand(messageCmd)

	messageCmd.Flags().BoolVar(&msgCopy, "copy", false, "also copy the message to the clipboard")
}

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Print a commit message for the latest update",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := message.Generate(chance.New(), time.Now())

		if msgCopy {
			if err := clipboard.WriteAll(msg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}
