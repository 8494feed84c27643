package main

import (
	"context"
	"os"
	"os/signal"

	"pokedex/browser/internal/config"
	"pokedex/browser/internal/container"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	pages       int
	search      string
	output      string
	interactive bool
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Browse the PokeAPI catalog from the terminal",
	Long: `pokedex loads creature records from PokeAPI one page at a time and shows them as cards.

In the interactive shell any text filters the loaded records by name and :more loads the next page.
Without a terminal, or with --interactive=false, it loads --pages pages and prints the filtered result.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		app, err := container.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		return app.Run(cmd.Context(), container.RunOptions{
			Interactive: interactive,
			Pages:       pages,
			Search:      search,
			Output:      output,
			Out:         os.Stdout,
		})
	},
}

func init() {
	tty := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yaml if present)")
	rootCmd.Flags().IntVarP(&pages, "pages", "p", 1, "pages to load in batch mode")
	rootCmd.Flags().StringVarP(&search, "search", "s", "", "name filter applied in batch mode")
	rootCmd.Flags().StringVarP(&output, "output", "o", container.OutputText, "batch output format: text or json")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", tty, "open the interactive shell")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("pokedex exited with error: %v", err)
		stop()
		os.Exit(1)
	}
}
