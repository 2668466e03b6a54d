package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"popfly/internal/app"
	"popfly/internal/domain"
	"popfly/internal/engine"
	"popfly/internal/format"
	"popfly/internal/grid"
)

var (
	configDir string
	serverURL string
	appCtx    *app.App

	startArg  string
	endArg    string
	faction   string
	precision int
	jsonOut   bool
)

// Execute builds and runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "popfly",
		Short:        "Grid distance and azimuth calculator (MGRS digit shorthand)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCtx, err = app.New(app.Config{ConfigDir: configDir, ServerURL: serverURL})
			return err
		},
		RunE: runCompute,
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "config dir (default os config dir, or $POPFLY_CONFIG_DIR)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "compute via a running popflyd (e.g. http://127.0.0.1:8080)")

	root.Flags().StringVar(&startArg, "start", "", "start point 'EEE,NNN' (1-5 digit tokens); falls back to the persisted start")
	root.Flags().StringVar(&endArg, "end", "", "end point 'EEE,NNN' (1-5 digit tokens)")
	root.Flags().StringVar(&faction, "faction", "", "mil system: nato (6400) or ru (6000); falls back to the persisted default")
	root.Flags().IntVar(&precision, "precision", 0, "decimal places for distances; azimuth always uses 1")
	root.Flags().BoolVar(&jsonOut, "json", false, "output JSON")

	root.AddCommand(setStartCmd(), showStartCmd(), clearStartCmd(), setFactionCmd(), versionCmd())
	return root
}

func runCompute(cmd *cobra.Command, args []string) error {
	if endArg == "" {
		return fmt.Errorf("missing --end")
	}
	if precision < 0 {
		return fmt.Errorf("precision must be >= 0")
	}

	system, err := resolveFaction()
	if err != nil {
		return err
	}

	if appCtx.Remote != nil {
		return computeRemote(cmd, system)
	}

	start, err := resolveStart()
	if err != nil {
		return err
	}
	end, err := grid.ParsePair(endArg)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}

	res := engine.Compute(start, end, system)
	if jsonOut {
		return printJSON(cmd, jsonPayload(res, precision))
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.Line(res, precision))
	return nil
}

// resolveStart prefers the --start flag and falls back to the persisted start.
func resolveStart() (domain.Point, error) {
	if startArg != "" {
		p, err := grid.ParsePair(startArg)
		if err != nil {
			return domain.Point{}, fmt.Errorf("start: %w", err)
		}
		return p, nil
	}
	p, found, err := appCtx.Config.LoadStart()
	if err != nil {
		return domain.Point{}, err
	}
	if !found {
		return domain.Point{}, fmt.Errorf("missing --start and no persisted start set")
	}
	return p, nil
}

// resolveFaction prefers the --faction flag and falls back to the persisted
// default, then NATO.
func resolveFaction() (domain.AngularSystem, error) {
	if faction != "" {
		return domain.ParseAngularSystem(faction)
	}
	system, found, err := appCtx.Config.LoadFaction()
	if err != nil {
		return domain.NATO, err
	}
	if !found {
		return domain.NATO, nil
	}
	return system, nil
}

func computeRemote(cmd *cobra.Command, system domain.AngularSystem) error {
	start := []any{}
	if startArg != "" {
		tokens, err := splitPair(startArg)
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		start = tokens
	} else {
		p, found, err := appCtx.Config.LoadStart()
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("missing --start and no persisted start set")
		}
		start = []any{p.Easting, p.Northing}
	}
	end, err := splitPair(endArg)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}

	resp, err := appCtx.Remote.Compute(cmd.Context(), start, end, precision, system.String())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd, resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Distance: %s m | Azimuth: %s mils\n",
		format.Distance(resp.DistanceM, precision), format.Azimuth(resp.AzimuthMils))
	return nil
}

// splitPair turns "EEE,NNN" into its raw tokens without expanding them; the
// server owns the parsing when computing remotely.
func splitPair(value string) ([]any, error) {
	tokens, err := grid.SplitPair(value)
	if err != nil {
		return nil, err
	}
	parts := make([]any, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok
	}
	return parts, nil
}

type jsonResult struct {
	Format      string     `json:"format"`
	Start       [2]float64 `json:"start"`
	End         [2]float64 `json:"end"`
	DistanceM   float64    `json:"distance_m"`
	AzimuthMils float64    `json:"azimuth_mils"`
	Faction     string     `json:"faction"`
}

func jsonPayload(res domain.Result, precision int) jsonResult {
	return jsonResult{
		Format:      "mgrs-digits",
		Start:       res.Start.Pair(),
		End:         res.End.Pair(),
		DistanceM:   format.Round(res.DistanceM, precision),
		AzimuthMils: format.RoundAzimuth(res.AzimuthMils),
		Faction:     res.System.String(),
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
