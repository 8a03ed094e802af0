package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// menuInput is the reader the interactive menu consumes; a package variable
// so tests can drive the loop with scripted input.
var menuInput io.Reader = os.Stdin

// runMenu is the root command's action: a numbered menu loop over the same
// operations the subcommands expose.
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}

	scanner := bufio.NewScanner(menuInput)

	for {
		fmt.Println("Hardware Health & Inventory Checker")
		fmt.Println("1) Run health check (collect + log)")
		fmt.Println("2) View recent logs")
		fmt.Println("3) Export latest report (txt)")
		fmt.Println("4) Quit")
		fmt.Println()
		fmt.Print("Choose an option: ")

		if !scanner.Scan() {
			// EOF counts as quit so piped input can't spin forever.
			fmt.Println()
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			if err := doCheck(ctx); err != nil {
				fmt.Printf("Error: %v\n\n", err)
			}
		case "2":
			if err := showRecentLogs(defaultLogsLimit); err != nil {
				fmt.Printf("Error: %v\n\n", err)
			}
		case "3":
			if err := exportLatest(); err != nil {
				fmt.Printf("Error: %v\n\n", err)
			}
		case "4":
			fmt.Println()
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println()
			fmt.Println("Invalid option. Try again.")
			fmt.Println()
		}
	}
}
