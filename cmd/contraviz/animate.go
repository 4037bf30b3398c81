package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dusk-indust/contraviz/internal/config"
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/export"
	"github.com/dusk-indust/contraviz/internal/figures"
	"github.com/dusk-indust/contraviz/internal/llm"
	"github.com/dusk-indust/contraviz/internal/orchestrator"
	"github.com/dusk-indust/contraviz/internal/render"
)

var (
	animateOutput    string
	animateFormation string
	animateModel     string
	animateNoLLM     bool
	animateASCII     bool
	animateStep      float64
	animateProg      float64
	animateJSON      string
)

func init() {
	animateCmd.Flags().StringVarP(&animateOutput, "output", "o", "dance.html", "output HTML file")
	animateCmd.Flags().StringVar(&animateFormation, "formation", "", "starting formation: improper or beckett")
	animateCmd.Flags().StringVar(&animateModel, "model", "", "language model for notation parsing")
	animateCmd.Flags().BoolVar(&animateNoLLM, "no-llm", false, "input is a pre-parsed JSON call list, skip the model")
	animateCmd.Flags().BoolVar(&animateASCII, "ascii", false, "print an ASCII timeline instead of writing HTML")
	animateCmd.Flags().Float64Var(&animateStep, "beats-per-frame", 0, "keyframe sampling interval in beats")
	animateCmd.Flags().Float64Var(&animateProg, "progression", 0, "progression distance per 64-beat cycle")
	animateCmd.Flags().StringVar(&animateJSON, "json", "", "also write the timeline as JSON to this file")
	rootCmd.AddCommand(animateCmd)
}

var animateCmd = &cobra.Command{
	Use:   "animate [file]",
	Short: "Animate a dance from notation or a JSON call list",
	Long: `Animate reads contra dance notation from a file or stdin, parses it into
figure calls, generates the keyframe timeline, and writes a self-contained
HTML animation.

Examples:
  # Animate notation from a file
  contraviz animate dance.txt

  # Animate notation from stdin
  cat dance.txt | contraviz animate -

  # Skip the language model and animate a JSON call list directly
  contraviz animate --no-llm calls.json

  # Preview in the terminal
  contraviz animate --no-llm --ascii calls.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnimate,
}

// danceInput is the JSON shape accepted with --no-llm.
type danceInput struct {
	Formation string             `json:"formation"`
	Calls     []dance.FigureCall `json:"calls"`
}

func runAnimate(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	input, err := readInput(args)
	if err != nil {
		return err
	}

	proj, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	calls, formation, err := resolveCalls(cmd, input, proj, log)
	if err != nil {
		return err
	}
	if animateFormation != "" {
		if formation, err = dance.ParseFormation(animateFormation); err != nil {
			return err
		}
	}

	cfg := pipelineConfig(proj, formation)
	result, err := orchestrator.New(cfg, figures.NewRegistry(), log).Run(calls)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if animateJSON != "" {
		if err := writeTimelineJSON(animateJSON, result); err != nil {
			return err
		}
	}

	if animateASCII {
		return render.WriteTimeline(os.Stdout, result.Keyframes)
	}

	out, err := os.Create(animateOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := render.WriteHTML(out, "contraviz", result.Keyframes); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d frames, %.0f beats)\n",
		animateOutput, len(result.Keyframes), result.Final.Beat)
	return nil
}

// writeTimelineJSON exports the run as a JSON timeline document.
func writeTimelineJSON(path string, result *orchestrator.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteJSON(f, export.BuildTimelineExport(path, result))
}

// readInput reads notation from the named file, or stdin for "-" or no arg.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// resolveCalls produces the final call list: either decoded directly from
// JSON (--no-llm) or parsed from notation by the model, with swing end
// formations resolved.
func resolveCalls(cmd *cobra.Command, input string, proj *config.ProjectConfig, log *zap.Logger) ([]dance.FigureCall, dance.Formation, error) {
	if animateNoLLM {
		var parsed danceInput
		if err := json.Unmarshal([]byte(input), &parsed); err != nil {
			return nil, "", fmt.Errorf("decode call list: %w", err)
		}
		formation := dance.FormationImproper
		if parsed.Formation != "" {
			f, err := dance.ParseFormation(parsed.Formation)
			if err != nil {
				return nil, "", err
			}
			formation = f
		}
		return parsed.Calls, formation, nil
	}

	model := animateModel
	if model == "" {
		model = proj.Model
	}
	completer, err := llm.NewAnthropicCompleter(model)
	if err != nil {
		return nil, "", err
	}

	ctx := cmd.Context()
	calls, formation, err := llm.NewParser(completer, log).Parse(ctx, input)
	if err != nil {
		return nil, "", err
	}
	calls, err = llm.NewEndFormationResolver(completer, log).Resolve(ctx, calls)
	if err != nil {
		return nil, "", err
	}
	return calls, formation, nil
}

// pipelineConfig merges defaults, the project file, and flags. Flags win.
func pipelineConfig(proj *config.ProjectConfig, formation dance.Formation) orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.Formation = formation

	if proj.Progression != 0 {
		cfg.Progression = proj.Progression
	}
	if proj.BeatsPerFrame > 0 {
		cfg.BeatsPerFrame = proj.BeatsPerFrame
	}
	if proj.Sanity.MinDistance > 0 {
		cfg.Sanity.MinDistance = proj.Sanity.MinDistance
	}
	if proj.Sanity.MaxSpeed > 0 {
		cfg.Sanity.MaxSpeed = proj.Sanity.MaxSpeed
	}
	if proj.Sanity.MaxSpin > 0 {
		cfg.Sanity.MaxSpin = proj.Sanity.MaxSpin
	}
	if proj.Sanity.Tolerance > 0 {
		cfg.Sanity.Tolerance = proj.Sanity.Tolerance
	}

	if animateStep > 0 {
		cfg.BeatsPerFrame = animateStep
	}
	if animateProg != 0 {
		cfg.Progression = animateProg
	}
	return cfg
}
