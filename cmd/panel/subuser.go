package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"panel/internal/subuser/models"
)

func newSubuserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subuser",
		Short: "Inspect and update subusers",
	}
	cmd.AddCommand(newSubuserShowCmd(a), newSubuserUpdateCmd(a), newPermissionsCmd())
	return cmd
}

func parseSubuserID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subuser id %q", arg)
	}
	return id, nil
}

func newSubuserShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a subuser and its permissions as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSubuserID(args[0])
			if err != nil {
				return err
			}
			return a.withRuntime(cmd.Context(), func(rt *runtime) error {
				details, err := rt.subusers.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(details)
			})
		},
	}
}

func newSubuserUpdateCmd(a *app) *cobra.Command {
	var permissions []string
	var clearAll bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a subuser's permissions and revoke its daemon key",
		Long: `Replace every permission of the subuser with the given set, then revoke the
subuser's daemon access key on its node. Nothing is saved if the daemon
cannot be reached.`,
		Example: "  panel subuser update 4 --permission control.console --permission file.read",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSubuserID(args[0])
			if err != nil {
				return err
			}
			if len(permissions) == 0 && !clearAll {
				return fmt.Errorf("pass at least one --permission, or --clear to remove all")
			}
			return a.withRuntime(cmd.Context(), func(rt *runtime) error {
				if err := rt.subusers.Update(cmd.Context(), id, permissions); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated subuser %d\n", id)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVarP(&permissions, "permission", "p", nil, "permission to grant (repeatable)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "remove every permission")
	return cmd
}

func newPermissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "permissions",
		Short: "List every permission a subuser can be granted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(models.DefaultCatalog.Names(), "\n"))
			return nil
		},
	}
}

// withRuntime runs fn against a runtime that is closed afterwards. CLI
// metrics go to a throwaway registry.
func (a *app) withRuntime(ctx context.Context, fn func(rt *runtime) error) error {
	rt, err := newRuntime(ctx, a.cfg, a.logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close(context.Background()) }()
	return fn(rt)
}
