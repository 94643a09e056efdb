package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rootcalc/internal/history"
	"github.com/zephyrtronium/rootcalc/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	Addr string
	DB   string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP evaluation API",
		Long: `Serve the evaluator over HTTP, recording every evaluation in a SQLite
history database. The default database is in memory and is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", envOrDefault("ROOTCALC_ADDR", "127.0.0.1:8790"), "listen address (env ROOTCALC_ADDR)")
	cmd.Flags().StringVar(&opts.DB, "db", envOrDefault("ROOTCALC_DB", ":memory:"), "history database path (env ROOTCALC_DB)")

	return cmd
}

func runServe(rootOpts *RootOptions, opts *ServeOptions) error {
	store, err := history.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening history", err)
	}
	defer store.Close()

	srv := server.New(store, rootOpts.evalOptions()...)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCh:
		case <-done:
			return
		}
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("rootcalc listening on %s (db=%s, lenient=%t)", opts.Addr, opts.DB, rootOpts.Lenient)
	if err := srv.Listen(opts.Addr); err != nil {
		return WrapExitError(ExitCommandError, "listening on "+opts.Addr, err)
	}
	return nil
}
