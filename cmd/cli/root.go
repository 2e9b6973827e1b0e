package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/amirasaad/aliasregistry/pkg/app"
	"github.com/amirasaad/aliasregistry/pkg/domain"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/service/auth"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// appLoader builds the application and returns a func releasing it.
type appLoader func(ctx context.Context) (*app.App, func(), error)

// cli carries what every subcommand needs once the app is loaded.
type cli struct {
	out, errOut io.Writer
	load        appLoader
	app         *app.App
	release     func()

	as      string
	noColor bool
}

func newRootCmd(out, errOut io.Writer, load appLoader) *cobra.Command {
	c := &cli{out: out, errOut: errOut, load: load}

	root := &cobra.Command{
		Use:   "aliasctl",
		Short: "Operate the alias registry",
		Long: `aliasctl reads and mutates the alias registry using the storage
configured in the environment (.env is loaded when present).

Mutating commands act on behalf of the address given with --as.

Examples:
  aliasctl init --max-size 32
  aliasctl create alice --as secret1alice
  aliasctl search address secret1alice
  aliasctl destroy alice --as secret1alice`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.noColor {
				color.NoColor = true
			}
			a, release, err := c.load(cmd.Context())
			if err != nil {
				c.printErr(err)
				return err
			}
			c.app, c.release = a, release
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.as, "as", "", "address to act as")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		c.initCmd(),
		c.configCmd(),
		c.createCmd(),
		c.destroyCmd(),
		c.searchCmd(),
		c.showCmd(),
		c.receiveCmd(),
	)
	return root
}

// run wraps a subcommand body so that failures are printed once, in red.
func (c *cli) run(fn func(cmd *cobra.Command, args []string) (any, string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer c.close()
		result, msg, err := fn(cmd, args)
		if err != nil {
			c.printErr(err)
			return err
		}
		c.printSuccess(msg)
		return c.printJSON(result)
	}
}

func (c *cli) close() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// identity resolves --as through the auth service.
func (c *cli) identity(ctx context.Context) (alias.Identity, error) {
	return c.app.AuthService.IdentityFromContext(auth.WithIdentity(ctx, alias.Identity(c.as)))
}

func (c *cli) printSuccess(msg string) {
	fmt.Fprintln(c.errOut, color.New(color.FgGreen).Sprint(msg))
}

func (c *cli) printErr(err error) {
	if code := domain.CodeOf(err); code != "" {
		fmt.Fprintln(c.errOut, color.New(color.FgRed).Sprintf("error [%s]: %s", code, err))
		return
	}
	fmt.Fprintln(c.errOut, color.New(color.FgRed).Sprintf("error: %s", err))
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
