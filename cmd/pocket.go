package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/matheuskafuri/readlater/internal/config"
	"github.com/matheuskafuri/readlater/internal/output"
	"github.com/matheuskafuri/readlater/internal/pocket"
	"github.com/spf13/cobra"
)

var (
	flagListDetails bool
	flagListTag     string
	flagListState   string
	flagListSort    string
)

// newTransport is replaced in tests.
var newTransport = func() pocket.Transport {
	return pocket.NewHTTPTransport(nil)
}

var pocketCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Work with your Pocket account",
}

var pocketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved articles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, format, err := loadConfig()
		if err != nil {
			return err
		}

		opts := pocket.ListOptions{
			State:   flagListState,
			Sort:    flagListSort,
			Details: flagListDetails,
		}
		if cmd.Flags().Changed("tag") {
			opts.Tag = pocket.Some(flagListTag)
		}

		return runList(cmd.Context(), listEnv{
			cfg:       cfg,
			format:    format,
			transport: newTransport(),
			stdout:    cmd.OutOrStdout(),
			stderr:    cmd.ErrOrStderr(),
			log:       newLogger(cmd, cfg),
		}, opts)
	},
}

func init() {
	f := pocketListCmd.Flags()
	f.BoolVarP(&flagListDetails, "details", "d", false, "Select details for articles")
	f.StringVarP(&flagListTag, "tag", "t", "", "Select articles tagged with <tag> to list")
	f.StringVarP(&flagListState, "state", "s", "unread", "Select articles to list [unread, archive, all]")
	f.StringVar(&flagListSort, "sort", "newest", "Select sort order [newest, oldest, title, site]")

	pocketCmd.AddCommand(pocketListCmd)
}

type listEnv struct {
	cfg       *config.Config
	format    output.Format
	transport pocket.Transport
	stdout    io.Writer
	stderr    io.Writer
	log       *slog.Logger
}

// runList performs one list call and renders the reply. Every failure comes
// back as a *pocket.ListError.
func runList(ctx context.Context, env listEnv, opts pocket.ListOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	q, err := pocket.NewQuery(env.cfg.PocketConsumerKey(), env.cfg.PocketAccessToken(), opts)
	if err != nil {
		return pocket.Failed(err)
	}

	output.NewConsole(env.stderr).Info("Getting list of your articles ...")

	client := pocket.NewClient(env.transport, env.cfg.PocketEndpoint(), env.log)
	raw, err := client.List(ctx, q)
	if err != nil {
		return pocket.Failed(err)
	}

	d := &output.Dispatcher{
		Format:  env.format,
		Console: output.NewConsole(env.stdout),
		Sink:    output.NewJSONSink(env.stdout),
	}
	return pocket.Failed(d.Dispatch(raw))
}
