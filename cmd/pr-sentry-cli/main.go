// Package main provides the pr-sentry CLI: it normalizes pull request
// addresses and CI run environments into one canonical context, and can
// maintain the summary comment on the resolved pull request.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathantilsley/pr-sentry/internal/log"
	githubapi "github.com/nathantilsley/pr-sentry/internal/prcontext/adapters/github_api"
	"github.com/nathantilsley/pr-sentry/internal/prcontext/app"
	"github.com/nathantilsley/pr-sentry/internal/prcontext/ci"
)

// summaryMarker tags the sticky comment so later runs find and update it
// instead of posting duplicates.
const summaryMarker = "<!-- pr-sentry-summary -->"

var (
	logLevel    string
	commentBody string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pr-sentry",
		Short:         "Normalize pull request context from URLs and CI environments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity (debug, info, warn, error)")

	root.AddCommand(newResolveCmd())
	root.AddCommand(newCICmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newCommentCmd())
	return root
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [address]",
		Short: "Fetch and print details of the resolved pull request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := ""
			if len(args) > 0 {
				address = args[0]
			}

			env := ci.SnapshotEnv()
			parts, err := app.NewService(env).Resolve(address)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			info, err := githubapi.New(ctx, ci.ReviewToken(env)).FetchPullRequest(ctx, parts)
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [address]",
		Short: "Print the canonical platform/repo/number triple for a PR address or the current CI run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := ""
			if len(args) > 0 {
				address = args[0]
			}

			parts, err := app.NewService(ci.SnapshotEnv()).Resolve(address)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{
				"platform":          parts.Platform.String(),
				"repo":              parts.Repo,
				"pullRequestNumber": parts.PullRequestNumber,
			})
		},
	}
}

func newCICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ci",
		Short: "Report which CI provider is detected and whether the run is PR-shaped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := ci.SnapshotEnv()
			src, err := ci.Detect(env)
			if err != nil {
				return err
			}
			if src == nil {
				return app.ErrNotCI
			}

			report := map[string]any{
				"provider":    src.Name(),
				"platform":    src.Platform().String(),
				"isPR":        src.IsPR(),
				"useEventDSL": src.UseEventDSL(),
			}
			if id, err := src.PullRequestID(); err == nil {
				report["pullRequestID"] = id
			}
			if slug, err := src.RepoSlug(); err == nil {
				report["repoSlug"] = slug
			}
			return printJSON(cmd, report)
		},
	}
}

func newCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment [address]",
		Short: "Create or update the pr-sentry summary comment on the resolved pull request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if commentBody == "" {
				return errors.New("comment body required, provide via --body")
			}

			address := ""
			if len(args) > 0 {
				address = args[0]
			}

			env := ci.SnapshotEnv()
			parts, err := app.NewService(env).Resolve(address)
			if err != nil {
				return err
			}

			token := ci.ReviewToken(env)
			if token == "" {
				return errors.New("github token required, set PR_SENTRY_GITHUB_TOKEN or GITHUB_TOKEN")
			}

			ctx := cmd.Context()
			adapter := githubapi.New(ctx, token)
			if err := adapter.UpsertSummaryComment(ctx, parts, summaryMarker, commentBody); err != nil {
				return err
			}

			log.Get().Infow("summary comment in place", "repo", parts.Repo, "pr", parts.PullRequestNumber)
			return nil
		},
	}
	cmd.Flags().StringVar(&commentBody, "body", "", "comment body to post")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
