// dohdns resolves DNS records over public DNS-over-HTTPS JSON endpoints
// and prints them as a table.
//
// Usage: dohdns <record-type> <name>
//
// Configuration comes from DOH_-prefixed environment variables; see
// internal/dns/config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haukened/doh-dns/internal/dns/common/log"
	"github.com/haukened/doh-dns/internal/dns/config"
	"github.com/haukened/doh-dns/internal/dns/domain"
	"github.com/haukened/doh-dns/internal/dns/services/resolver"
)

const version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the dohdns command.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dohdns <record-type> <name>",
		Short:   "Resolve DNS records over DNS-over-HTTPS",
		Long:    "dohdns queries public DNS-over-HTTPS JSON endpoints (Google, Cloudflare)\nand prints the answers as a table.",
		Version: version,
		Args:    cobra.ExactArgs(2),
		Example: "  dohdns mx gmail.com\n  dohdns txt google.com",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
		SilenceUsage: true,
	}
}

// run resolves name for the given record type and renders the result.
func run(cmd *cobra.Command, rrtype, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("logging configuration error: %w", err)
	}

	servers, err := cfg.ServerList()
	if err != nil {
		return err
	}
	r, err := resolver.New(resolver.Options{
		Servers: servers,
		Logger:  log.GetLogger(),
	})
	if err != nil {
		return err
	}

	answers, err := r.ResolveType(cmd.Context(), name, rrtype)
	if err != nil {
		return err
	}

	if len(answers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
		return nil
	}
	return renderTable(cmd.OutOrStdout(), answers)
}

// renderTable prints answers as an aligned Name/Type/TTL/Data table.
func renderTable(w io.Writer, answers []domain.Answer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)
	fmt.Fprintln(tw, "Name\tType\tTTL\tData")
	for _, a := range answers {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", a.Name, a.Type, a.TTL, a.Data)
	}
	return tw.Flush()
}
