package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/cache"
	"github.com/matzehuels/cansdash/pkg/config"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if c.Config.Cache.Backend == config.BackendNone {
				printInfo(w, "Caching is disabled")
				return nil
			}

			ch, err := c.newCache(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer ch.Close()

			if err := cache.Clear(cmd.Context(), ch); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess(w, "Cleared %s cache", c.Config.Cache.Backend)
			printDetail(w, "%s", c.cacheLocation())
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where artifacts are cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.cacheLocation())
			return nil
		},
	}
}

// cacheLocation describes the configured backend: a directory for the file
// cache, redis://addr/db plus key prefix for Redis.
func (c *CLI) cacheLocation() string {
	cc := c.Config.Cache
	switch cc.Backend {
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d %s*", cc.RedisAddr, cc.RedisDB, cc.RedisPrefix)
	case config.BackendNone:
		return "(disabled)"
	}
	return cc.Dir
}
