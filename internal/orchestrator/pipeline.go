// Package orchestrator turns a parsed list of figure calls into one
// continuous animation timeline. It resolves relational participant
// references against the fixed hands-four topology, invokes the geometric
// generator for each figure, merges simultaneous figures into a single
// frame sequence, and runs the post-hoc sanity sweeps.
package orchestrator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/figures"
	"github.com/dusk-indust/contraviz/internal/motion"
	"github.com/dusk-indust/contraviz/internal/sanity"
)

// progressionCheckBeats is the shortest timeline for which the progression
// sweep is meaningful. Shorter timelines are partial dances and are skipped.
const progressionCheckBeats = 64.0

// Result is the output of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and exports.
	RunID string `json:"run_id"`
	// Keyframes is the merged, beat-ordered animation timeline.
	Keyframes []dance.Keyframe `json:"keyframes"`
	// Final is the world state after the last call.
	Final *dance.WorldState `json:"final"`
	// Warnings collects skipped calls, figure warnings, and sanity findings.
	Warnings []string `json:"warnings,omitempty"`
}

// Pipeline drives figure generation over a shared world state.
type Pipeline struct {
	cfg      Config
	registry *figures.Registry
	log      *zap.Logger
}

// New creates a Pipeline. A nil logger is replaced with a no-op logger.
func New(cfg Config, registry *figures.Registry, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.BeatsPerFrame <= 0 {
		cfg.BeatsPerFrame = figures.DefaultBeatsPerFrame
	}
	return &Pipeline{cfg: cfg, registry: registry, log: log}
}

// Run executes the calls in order and returns the merged timeline.
// Consecutive calls sharing the same beat window run simultaneously and are
// merged into a single frame sequence. Unknown figures, unknown participant
// references, and empty beat windows are downgraded to warnings so a single
// bad call never sinks the whole dance; skipped calls still advance the
// running beat to the end of their window.
func (p *Pipeline) Run(calls []dance.FigureCall) (*Result, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID))
	log.Info("starting run",
		zap.Int("calls", len(calls)),
		zap.String("formation", string(p.cfg.Formation)))

	state, err := dance.MakeFormation(p.cfg.Formation, 0)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	start := state.Clone()

	result := &Result{RunID: runID}
	// Seed the timeline with the formation only when the dance leaves beat 0
	// silent; a figure starting at 0 supplies its own first frame.
	if len(calls) == 0 || calls[0].BeatStart > 0 {
		result.Keyframes = append(result.Keyframes, dance.Keyframe{
			Beat:    0,
			Dancers: state.Clone().Dancers,
		})
	}

	for _, group := range groupSimultaneous(calls) {
		p.runGroup(group, state, result, log)
	}

	result.Final = state.Clone()
	result.Warnings = append(result.Warnings, sanity.RunAll(result.Keyframes, p.cfg.Sanity)...)

	if state.Beat >= progressionCheckBeats {
		result.Warnings = append(result.Warnings,
			sanity.CheckProgression(start, state, p.cfg.Progression, p.cfg.Sanity.Tolerance)...)
	}

	log.Info("run complete",
		zap.Int("frames", len(result.Keyframes)),
		zap.Float64("beats", state.Beat),
		zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

// runGroup executes one simultaneous group of calls against the shared
// state, merges their frame sequences, and appends them to the timeline.
func (p *Pipeline) runGroup(group []dance.FigureCall, state *dance.WorldState, result *Result, log *zap.Logger) {
	var sequences []motion.Sequence

	for _, call := range group {
		if call.BeatEnd <= call.BeatStart {
			p.warn(result, log, call, fmt.Sprintf("empty beat window [%g, %g]", call.BeatStart, call.BeatEnd))
			continue
		}

		fn, ok := p.registry.Lookup(call.Name)
		if !ok {
			p.warn(result, log, call, fmt.Sprintf("unknown figure %q", call.Name))
			continue
		}

		pairs, participants, err := p.resolveParticipants(call)
		if err != nil {
			p.warn(result, log, call, err.Error())
			continue
		}

		state.Beat = call.BeatStart
		seqs, warnings, err := p.invoke(fn, call, state, pairs, participants)
		if err != nil {
			p.warn(result, log, call, err.Error())
			continue
		}
		for _, w := range warnings {
			p.warn(result, log, call, w)
		}
		for _, seq := range seqs {
			// A figure that only warns yields no frames; an empty
			// sequence in a merge would erase the whole group.
			if len(seq.Frames) == 0 {
				continue
			}
			sequences = append(sequences, seq)
		}
	}

	if len(sequences) > 0 {
		// The group's first frame shares its beat with the previous group's
		// last. Both are kept: the instantaneous facing snap between figures
		// then lives in a zero-duration interval, which the speed and spin
		// sweeps skip.
		result.Keyframes = append(result.Keyframes, motion.Merge(sequences)...)
	}

	// Skipped or frameless calls still consume their beat window.
	if end := group[0].BeatEnd; end > state.Beat {
		state.Beat = end
	}
}

// invoke runs a figure once over the full participant list. When the figure
// rejects the count it is retried once per resolved pair, so a call like
// "swing with neighbors" fans out into one swing per neighbor pair. Each
// successful invocation updates the shared state for its own participants.
func (p *Pipeline) invoke(fn figures.Func, call dance.FigureCall, state *dance.WorldState, pairs []dance.Pair, participants []dance.DancerID) ([]motion.Sequence, []string, error) {
	seq, warnings, err := p.invokeOnce(fn, call, state, participants)
	if err == nil {
		return []motion.Sequence{seq}, warnings, nil
	}

	var countErr *figures.ParticipantCountError
	if !errors.As(err, &countErr) {
		return nil, nil, err
	}

	var sequences []motion.Sequence
	var allWarnings []string
	for _, pair := range pairs {
		seq, warnings, err := p.invokeOnce(fn, call, state, pair[:])
		if err != nil {
			return nil, nil, err
		}
		sequences = append(sequences, seq)
		allWarnings = append(allWarnings, warnings...)
	}
	return sequences, allWarnings, nil
}

// invokeOnce runs a figure for one participant set and applies its end
// poses to the shared state so later calls in the same group chain off it.
func (p *Pipeline) invokeOnce(fn figures.Func, call dance.FigureCall, state *dance.WorldState, participants []dance.DancerID) (motion.Sequence, []string, error) {
	ctx := &figures.Context{
		Call:          call,
		Start:         state.Clone(),
		Participants:  participants,
		BeatsPerFrame: p.cfg.BeatsPerFrame,
	}

	res, err := fn(ctx)
	if err != nil {
		return motion.Sequence{}, nil, err
	}

	owns := make(map[dance.DancerID]bool, len(participants))
	for _, did := range participants {
		owns[did] = true
		if res.End != nil {
			state.Dancers[did] = res.End.Dancers[did]
		}
	}

	return motion.Sequence{Frames: res.Keyframes, Owns: owns}, res.Warnings, nil
}

// resolveParticipants maps a call's relational references to concrete pairs
// plus a deduplicated, order-preserving flat participant list. An empty
// participant list means everyone.
func (p *Pipeline) resolveParticipants(call dance.FigureCall) ([]dance.Pair, []dance.DancerID, error) {
	refs := call.Participants
	if len(refs) == 0 {
		refs = []string{"all"}
	}

	var pairs []dance.Pair
	for _, ref := range refs {
		resolved, err := dance.ResolveReference(ref)
		if err != nil {
			return nil, nil, err
		}
		pairs = append(pairs, resolved...)
	}

	seen := make(map[dance.DancerID]bool, 4)
	var flat []dance.DancerID
	for _, pair := range pairs {
		for _, did := range pair {
			if !seen[did] {
				seen[did] = true
				flat = append(flat, did)
			}
		}
	}
	return pairs, flat, nil
}

// warn records a per-call warning on the result and mirrors it to the log.
func (p *Pipeline) warn(result *Result, log *zap.Logger, call dance.FigureCall, msg string) {
	full := fmt.Sprintf("%s [%g-%g]: %s", call.Name, call.BeatStart, call.BeatEnd, msg)
	result.Warnings = append(result.Warnings, full)
	log.Warn("call issue",
		zap.String("figure", call.Name),
		zap.Float64("beat_start", call.BeatStart),
		zap.String("issue", msg))
}

// groupSimultaneous splits calls into runs of consecutive calls that share
// the exact same beat window. Calls in one group run at the same time.
func groupSimultaneous(calls []dance.FigureCall) [][]dance.FigureCall {
	var groups [][]dance.FigureCall
	for i := 0; i < len(calls); {
		j := i + 1
		for j < len(calls) && calls[j].BeatStart == calls[i].BeatStart && calls[j].BeatEnd == calls[i].BeatEnd {
			j++
		}
		groups = append(groups, calls[i:j])
		i = j
	}
	return groups
}
