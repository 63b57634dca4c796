package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/fastclean/internal/clean"
	"github.com/lakshaymaurya-felt/fastclean/internal/config"
)

func (a *app) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and delete Xcode caches",
		Long:  "List the disk usage of Xcode cache folders and delete them to reclaim space.\n\n" + folderHelp(),
	}

	cmd.AddCommand(
		a.newCacheListCmd(),
		a.newCacheDeleteCmd(),
		a.newCachePathsCmd(),
		a.newCacheBrowseCmd(),
	)

	return cmd
}

func (a *app) newCacheListCmd() *cobra.Command {
	var (
		folder  = config.All
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show disk usage of cache folders",
		Long:  "Print the disk usage of every path of a cache folder, grouped by folder. Nothing is modified.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, a.cacheFolder(cmd, folder), verbose)
		},
	}

	addCacheFolderFlag(cmd, &folder)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each command before running it")

	return cmd
}

func (a *app) newCacheDeleteCmd() *cobra.Command {
	var (
		folder  = config.All
		force   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete cache folders",
		Long: `Compute the space a cache folder occupies, ask for confirmation and
remove its paths. A path that fails to delete does not stop the others.

` + folderHelp(),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(cmd, a.cacheFolder(cmd, folder), force, verbose)
		},
	}

	addCacheFolderFlag(cmd, &folder)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without asking for confirmation")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each command before running it")

	return cmd
}

func (a *app) newCachePathsCmd() *cobra.Command {
	folder := config.All

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the paths of cache folders",
		Long:  "Print the expanded filesystem paths of a cache folder, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := a.home()
			if err != nil {
				return err
			}
			selected := a.cacheFolder(cmd, folder)
			for _, path := range config.ExpandPaths(selected.Paths(), home) {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	addCacheFolderFlag(cmd, &folder)

	return cmd
}

// folderHelp lists every cache folder with the paths it covers.
// deviceSupport covers only the "iOS DeviceSupport" folder, not all of
// ~/Library/Developer/Xcode.
func folderHelp() string {
	var b strings.Builder
	b.WriteString("Cache folders:\n")
	for _, f := range config.All.Concrete() {
		fmt.Fprintf(&b, "  %-20s %s\n", f, strings.Join(f.Paths(), ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func addCacheFolderFlag(cmd *cobra.Command, folder *config.CacheFolder) {
	cmd.Flags().VarP(folder, "cache-folder", "c", "Cache folder "+config.Suggestion())
	_ = cmd.RegisterFlagCompletionFunc("cache-folder", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(config.CacheFolders()))
		for _, f := range config.CacheFolders() {
			names = append(names, f.String()+"\t"+f.Description())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// cacheFolder returns the flag value, or the configured default when the
// flag was not given.
func (a *app) cacheFolder(cmd *cobra.Command, flagValue config.CacheFolder) config.CacheFolder {
	if cmd.Flags().Changed("cache-folder") {
		return flagValue
	}
	return a.settings.DefaultCacheFolder
}

func (a *app) runList(cmd *cobra.Command, folder config.CacheFolder, verbose bool) error {
	c, err := a.newCleaner(cmd)
	if err != nil {
		return err
	}
	if verbose {
		a.reportPlatform(cmd.Context(), c.Out)
	}

	c.List(cmd.Context(), folder, clean.ListOptions{Verbose: verbose})
	return nil
}

func (a *app) runDelete(cmd *cobra.Command, folder config.CacheFolder, force, verbose bool) error {
	c, err := a.newCleaner(cmd)
	if err != nil {
		return err
	}
	if verbose {
		a.reportPlatform(cmd.Context(), c.Out)
	}

	result := c.Delete(cmd.Context(), folder, clean.DeleteOptions{Force: force, Verbose: verbose})
	if failed := result.Failed(); len(failed) > 0 {
		c.Out.Warn("%d of %d path(s) could not be deleted", len(failed), len(result.Removed))
	}
	return nil
}
