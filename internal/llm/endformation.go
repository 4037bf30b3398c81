package llm

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// maxConcurrentQueries bounds simultaneous end-formation lookups.
const maxConcurrentQueries = 4

// EndFormationResolver fills in the target_facing and end_center params on
// swing calls. Swings are the one figure whose geometry cannot be derived
// from the start state alone, so each one is resolved with a model query.
type EndFormationResolver struct {
	completer Completer
	log       *zap.Logger
}

// NewEndFormationResolver creates a resolver. A nil logger is replaced with
// a no-op logger.
func NewEndFormationResolver(completer Completer, log *zap.Logger) *EndFormationResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &EndFormationResolver{completer: completer, log: log}
}

// endFormation is the wire shape of one resolution.
type endFormation struct {
	TargetFacing float64    `json:"target_facing"`
	EndCenter    [2]float64 `json:"end_center"`
}

// Resolve queries the model once per unresolved swing, concurrently, and
// returns a copy of the calls with the params filled in. Calls that already
// carry both params are left untouched.
func (r *EndFormationResolver) Resolve(ctx context.Context, calls []dance.FigureCall) ([]dance.FigureCall, error) {
	out := make([]dance.FigureCall, len(calls))
	copy(out, calls)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)

	for i := range out {
		if !needsEndFormation(out[i]) {
			continue
		}
		i := i
		g.Go(func() error {
			raw, err := r.completer.Complete(ctx, endFormationSystemPrompt, buildEndFormationPrompt(calls, i))
			if err != nil {
				return err
			}
			var ef endFormation
			if err := decodeJSON(raw, &ef); err != nil {
				return err
			}

			params := make(map[string]any, len(out[i].Params)+2)
			for k, v := range out[i].Params {
				params[k] = v
			}
			params["target_facing"] = ef.TargetFacing
			params["end_center"] = []float64{ef.EndCenter[0], ef.EndCenter[1]}
			out[i].Params = params

			r.log.Debug("resolved swing end formation",
				zap.Int("call", i),
				zap.Float64("target_facing", ef.TargetFacing))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// needsEndFormation reports whether a call is a swing missing either end
// formation param.
func needsEndFormation(call dance.FigureCall) bool {
	if !strings.Contains(strings.ToLower(call.Name), "swing") {
		return false
	}
	_, hasFacing := call.Params["target_facing"]
	_, hasCenter := call.Params["end_center"]
	return !hasFacing || !hasCenter
}
