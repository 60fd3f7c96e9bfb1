// Package cmd provides the root command and CLI setup for comment-header.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"commentheader.dev/pkg/commentheader/internal/adapter"
	"commentheader.dev/pkg/commentheader/internal/controller"
	"commentheader.dev/pkg/commentheader/internal/domain"
	m "commentheader.dev/pkg/commentheader/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var originAdapter adapter.OriginAdapter
var workflow domain.Workflow
var ui controller.UI

var pathFlag string
var licenseFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	originAdapter = adapter.NewGitOriginAdapter(viper.GetString(vcsBinaryKey))
	workflow = domain.NewWorkflow(fsAdapter, originAdapter, ui)
}

const rootLongDescription = `comment-header makes sure every Rust (.rs) and C# (.cs) file below a
directory starts with the block comment found in the license file.

A leading block comment that differs from it is replaced, files without one
get the header prepended, files that already carry it are left alone.
Every "$origin" in the license file is replaced by the URL of the
repository's "origin" remote (without a trailing ".git").`

// rootCmd represents the command run when the binary is invoked.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "comment-header",
		Short:        "Replace or add a comment header in Rust and C# source files",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return fmt.Errorf("read config: %w", configErr)
			}

			configureLogger()

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := homedir.Expand(viper.GetString(pathFlagName))
			if err != nil {
				return fmt.Errorf("expand --%s: %w", pathFlagName, err)
			}

			license, err := homedir.Expand(viper.GetString(licenseFlagName))
			if err != nil {
				return fmt.Errorf("expand --%s: %w", licenseFlagName, err)
			}

			_, err = workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Root:    m.Path(root),
				License: m.Path(license),
			})

			return err
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pathFlag, pathFlagName, "", "the root `DIRECTORY` to scan for source files")
	bindFlagToConfig(cmd.Flags().Lookup(pathFlagName), pathFlagName)
	cobra.CheckErr(cmd.MarkFlagRequired(pathFlagName))

	cmd.Flags().StringVar(&licenseFlag, licenseFlagName, "", "path to the `FILE` containing the new header")
	bindFlagToConfig(cmd.Flags().Lookup(licenseFlagName), licenseFlagName)
	cobra.CheckErr(cmd.MarkFlagRequired(licenseFlagName))
}

// bindFlagToConfig wires a Cobra flag to a Viper key so the value can be read
// through viper like every other setting.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
