package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// Parser turns free-form dance notation into figure calls.
type Parser struct {
	completer Completer
	log       *zap.Logger
}

// NewParser creates a Parser. A nil logger is replaced with a no-op logger.
func NewParser(completer Completer, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{completer: completer, log: log}
}

// parsedDance is the wire shape the model responds with.
type parsedDance struct {
	Formation string             `json:"formation"`
	Calls     []dance.FigureCall `json:"calls"`
}

// Parse transcribes notation into an ordered call list and the starting
// formation. The model's formation string is validated here so a bad
// transcription fails fast instead of deep inside the pipeline.
func (p *Parser) Parse(ctx context.Context, notation string) ([]dance.FigureCall, dance.Formation, error) {
	raw, err := p.completer.Complete(ctx, parseSystemPrompt, buildParsePrompt(notation))
	if err != nil {
		return nil, "", err
	}

	var parsed parsedDance
	if err := decodeJSON(raw, &parsed); err != nil {
		return nil, "", err
	}

	formation, err := dance.ParseFormation(parsed.Formation)
	if err != nil {
		return nil, "", fmt.Errorf("llm: model chose %w", err)
	}
	if len(parsed.Calls) == 0 {
		return nil, "", fmt.Errorf("llm: model produced no calls")
	}

	p.log.Info("parsed notation",
		zap.Int("calls", len(parsed.Calls)),
		zap.String("formation", parsed.Formation))
	return parsed.Calls, formation, nil
}
