package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pverhoeven/tubelens/internal/config"
	"github.com/pverhoeven/tubelens/internal/logging"
	"github.com/pverhoeven/tubelens/internal/tube"
)

// newFetchCmd creates and configures the 'fetch' subcommand. It resolves one
// entity through the full pipeline and prints it as JSON, which makes the
// extraction behavior inspectable without running the server.
func newFetchCmd() *cobra.Command {
	var (
		hl    string
		gl    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "fetch <video|channel|playlist|search> <id-or-query>",
		Short: "Resolves a single entity and prints it as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetchCommand(cmd.Context(), args[0], args[1], tube.Locale{Hl: hl, Gl: gl}, limit)
		},
	}
	cmd.Flags().StringVar(&hl, "hl", "", "interface language, e.g. en")
	cmd.Flags().StringVar(&gl, "gl", "", "region code, e.g. US")
	cmd.Flags().IntVar(&limit, "limit", 20, "max results for search and playlist items")
	return cmd
}

func runFetchCommand(ctx context.Context, kind, id string, loc tube.Locale, limit int) error {
	cfg, _, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	eng, _, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := eng.Close(context.Background()); cerr != nil {
			logger.Warn("engine close", zap.Error(cerr))
		}
	}()

	var out any
	switch kind {
	case "video":
		out, err = eng.Video(ctx, id, loc)
	case "channel":
		out, err = eng.Channel(ctx, id, loc)
	case "playlist":
		out, err = eng.Playlist(ctx, id, loc)
	case "search":
		out, err = eng.Search(ctx, id, loc, limit)
	default:
		return fmt.Errorf("unknown kind %q (want video, channel, playlist, or search)", kind)
	}
	if err != nil {
		return fmt.Errorf("resolve %s %q: %w", kind, id, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
