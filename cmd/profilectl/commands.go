package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/events"
	"github.com/based-profile/backend/internal/http/dto"
	"github.com/based-profile/backend/internal/services"
	"github.com/based-profile/backend/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	output  string
	verbose bool
	timeout time.Duration

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "profilectl",
		Short:         "Query the directory and resolve profiles from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.output != outputJSON && c.output != outputYAML {
				return fmt.Errorf("unsupported output %q (want json or yaml)", c.output)
			}
			c.cfg = config.Load()
			if c.verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				c.log = log
			} else {
				c.log = zap.NewNop()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputJSON, "Output format: json or yaml")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Operation timeout")

	root.AddCommand(c.lookupIDCmd(), c.lookupAddressCmd(), c.resolveCmd())
	return root
}

func (c *cli) lookupIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup-id <fid>",
		Short: "Look up a directory user by fid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || fid <= 0 {
				return fmt.Errorf("fid must be a positive integer, got %q", args[0])
			}

			ctx, cancel := withTimeout(cmd, c.timeout)
			defer cancel()

			user, err := directory.NewClient(c.cfg, c.log).LookupByID(ctx, fid)
			if err != nil {
				return err
			}
			resp := dto.NewDirectoryUserResponse(user, time.Now())
			resp.EthAddresses = user.EthAddresses()
			resp.SolAddresses = user.SolAddresses()
			return render(cmd.OutOrStdout(), c.output, resp)
		},
	}
}

func (c *cli) lookupAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup-address <address>",
		Short: "Look up the directory user that verified an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd, c.timeout)
			defer cancel()

			user, err := directory.NewClient(c.cfg, c.log).LookupByAddress(ctx, args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, dto.NewDirectoryUserResponse(user, time.Now()))
		},
	}
}

func (c *cli) resolveCmd() *cobra.Command {
	var contextPath string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a full profile from a session context",
		Long: `Reads a session context as JSON and prints the resolved profile.
Use --context - to read the context from stdin. Without --context the
profile is resolved from an empty context.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := readContext(cmd.InOrStdin(), contextPath)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd, c.timeout)
			defer cancel()

			svc := services.NewProfileService(directory.NewClient(c.cfg, c.log), events.NopPublisher{}, c.cfg, c.log)
			return render(cmd.OutOrStdout(), c.output, svc.Assemble(ctx, sc))
		},
	}
	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "Session context JSON file, or - for stdin")
	return cmd
}

func readContext(stdin io.Reader, path string) (*session.Context, error) {
	var sc session.Context
	if path == "" {
		return &sc, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}
	if len(data) == 0 {
		return &sc, nil
	}
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode context: %w", err)
	}
	return &sc, nil
}
