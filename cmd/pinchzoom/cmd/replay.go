package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/pinchzoom"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputJSON bool
)

// StepResult is the transform reported after one replayed step.
type StepResult struct {
	Step      int                  `json:"step"`
	Action    string               `json:"action"`
	Transform pinchzoom.Descriptor `json:"transform"`
	CSS       string               `json:"css"`
}

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a gesture script and print the resulting transforms",
	Long: `Replay a YAML or JSON gesture script against a fresh zoomer and print the
viewport transform after every step.

Touch steps (touches, release, tap, pan, pinch) are delivered frame by frame
the same way the interactive view delivers them. Wait and screenshot steps
only report the current transform.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&configPath, "config", "c", "", "viewport configuration file (YAML)")
	replayCmd.Flags().BoolVar(&outputJSON, "json", false, "output results as JSON")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg := pinchzoom.DefaultConfig()
	if configPath != "" {
		loaded, err := pinchzoom.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Debug = cfg.Debug || verbose

	script, err := pinchzoom.LoadGestureScript(args[0])
	if err != nil {
		return err
	}

	z := pinchzoom.NewZoomer(cfg)
	z.SetDebugOutput(cmd.ErrOrStderr())

	var results []StepResult
	err = pinchzoom.Replay(z, script, func(i int, st pinchzoom.ScriptStep, t pinchzoom.Transform) {
		results = append(results, StepResult{
			Step:      i,
			Action:    st.Action,
			Transform: t.Descriptor(),
			CSS:       t.String(),
		})
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(out, "%3d  %-10s  %s\n", r.Step, r.Action, r.CSS)
	}
	fmt.Fprintf(out, "\nFinal: zoom %.4f, translate (%.3f, %.3f)\n",
		z.Transform().ZoomFactor, z.Transform().Translate.X, z.Transform().Translate.Y)
	return nil
}
