package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/assetmagnets/platform/internal/client"
	"github.com/assetmagnets/platform/internal/models"
)

// clientOpener returns a ready client and the storage to close after the command
type clientOpener func(ctx context.Context) (*client.Client, io.Closer, error)

// cli carries the client shared by every subcommand
type cli struct {
	open   clientOpener
	out    io.Writer
	client *client.Client
	closer io.Closer
}

func newRootCmd(open clientOpener, out io.Writer) *cobra.Command {
	c := &cli{open: open, out: out}

	rootCmd := &cobra.Command{
		Use:   "assetctl",
		Short: "Command line client for the Asset Magnets API",
		Long: `assetctl signs in to the Asset Magnets API and manages its content.

When the API cannot be reached, calls are served from a local demo copy
of the data and the mode switches to "demo" until the API answers again.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cl, closer, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.client, c.closer = cl, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closer != nil {
				return c.closer.Close()
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.meCmd(),
		c.modeCmd(),
		c.listCmd(),
		c.deleteCmd(),
		c.themeCmd(),
	)
	return rootCmd
}

// print writes v as indented JSON followed by the current mode
func (c *cli) print(v any) error {
	if v != nil {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(c.out, "mode: %s\n", c.client.Mode())
	return err
}

// explain turns client errors into messages for the terminal
func explain(err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return errors.New("not logged in or session expired, run \"assetctl login\"")
	case errors.Is(err, client.ErrNetwork):
		return fmt.Errorf("%w (demo fallback is disabled)", err)
	}
	return err
}

// explainLogin reports why a login was refused instead of asking to log in again
func explainLogin(err error) error {
	var unauthorized *client.UnauthorizedError
	switch {
	case errors.As(err, &unauthorized) && unauthorized.Message != "":
		return fmt.Errorf("login failed: %s", unauthorized.Message)
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrInvalidCredentials):
		return errors.New("login failed: invalid credentials")
	}
	return explain(err)
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "login [email] [password]",
		Short:   "Log in and store the session",
		Example: "  assetctl login admin@assetmagnets.com admin123",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.Auth.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return explainLogin(err)
			}
			return c.print(resp.User)
		},
	}
}

func (c *cli) registerCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "register [email] [password] [name]",
		Short: "Create an account and store the session",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.Auth.Register(cmd.Context(), &models.RegisterRequest{
				Email:    args[0],
				Password: args[1],
				Name:     args[2],
				Role:     role,
			})
			if err != nil {
				return explain(err)
			}
			return c.print(resp.User)
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "student or applicant (default student)")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "logged out")
			return nil
		},
	}
}

func (c *cli) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.client.Auth.Me(cmd.Context())
			if err != nil {
				return explain(err)
			}
			return c.print(user)
		},
	}
}

func (c *cli) modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Show whether the last call was served by the API or the demo store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.print(nil)
		},
	}
}

func (c *cli) collection(name string) (client.CollectionClient, error) {
	coll, ok := c.client.Collections()[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q, expected one of: %s", name, strings.Join(c.client.CollectionNames(), ", "))
	}
	return coll, nil
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [collection]",
		Short:   "List the records of a collection",
		Example: "  assetctl list services",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := c.collection(args[0])
			if err != nil {
				return err
			}
			items, err := coll.ListAny(cmd.Context())
			if err != nil {
				return explain(err)
			}
			return c.print(items)
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [collection] [id]",
		Short:   "Delete a record",
		Example: "  assetctl delete faqs 5f0c8a4e-6a47-4a8e-9d1e-3b0c6f1d2a11",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := c.collection(args[0])
			if err != nil {
				return err
			}
			if err := coll.Delete(cmd.Context(), args[1]); err != nil {
				return explain(err)
			}
			return c.print(models.DeleteResponse{ID: args[1]})
		},
	}
}

func (c *cli) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [value]",
		Short: "Show or set the preferred theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := c.client.Session().SetTheme(cmd.Context(), args[0]); err != nil {
					return err
				}
			}
			fmt.Fprintf(c.out, "theme: %s\n", c.client.Session().Theme())
			return nil
		},
	}
}
