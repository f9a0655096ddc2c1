// parser.go - Parser strategies: Forward (eager assignment) and
// Delayed (assignment deferred past the positional phase).
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "go.uber.org/zap"

// Strategy selects which of the two parsing strategies described in
// spec §4.5 a [Parser] runs.
type Strategy int

const (
	// StrategyForward assigns option values and fires Value callbacks
	// as soon as each token's Proc completes.
	StrategyForward Strategy = iota
	// StrategyDelayed stashes coerced option values in a side map
	// during option dispatch and only assigns them (firing Value
	// callbacks) after the positional phase has run.
	StrategyDelayed
)

// Parser drives one parse of a raw argument slice against a
// [Registry]'s schema, per spec §4.5.
type Parser struct {
	reg      *Registry
	strategy Strategy
	logger   *zap.Logger
}

// NewParser builds a Parser over reg using strategy. logger defaults
// to [zap.NewNop] if nil.
func NewParser(reg *Registry, strategy Strategy, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{reg: reg, strategy: strategy, logger: logger}
}

// Parse runs the full parse described in spec §4.5 over args, mutating
// the Parser's [Registry] in place. It returns the first error raised
// by value coercion, a missing option argument, a check, or a
// callback; subsequent Procs are not attempted once an error surfaces.
// A token that fails to tokenize is not an error: it goes to the NOA
// list.
func (p *Parser) Parse(args []string) error {
	delay := p.strategy == StrategyDelayed
	stream := NewArgStream(args)
	keeper := NewValueKeeper()
	var noa []string

	stream.Fill()
	for !stream.ReachEnd() {
		raw := stream.Current()
		next := stream.Next()

		arg, err := Tokenize(raw, p.reg.prefixes)
		if err != nil {
			p.logger.Debug("token is not an option, pushed to NOA", zap.String("raw", *raw))
			noa = append(noa, *raw)
			stream.Skip()
			stream.Fill()
			continue
		}

		matched, needArg, err := p.publishOption(arg, next, delay, keeper)
		if err != nil {
			return err
		}
		switch {
		case matched && needArg:
			stream.SkipN(2)
		case matched:
			stream.Skip()
		default:
			p.logger.Debug("no option style matched, pushed to NOA", zap.String("raw", *raw))
			noa = append(noa, *raw)
			stream.Skip()
		}
		stream.Fill()
	}
	p.reg.noa = noa

	if !delay {
		if err := p.reg.CheckOptions(); err != nil {
			return err
		}
	}

	if err := p.runPositionalPhase(noa); err != nil {
		return err
	}

	if delay {
		if err := p.drainKeeper(keeper); err != nil {
			return err
		}
		if err := p.reg.CheckOptions(); err != nil {
			return err
		}
	}

	if err := p.reg.CheckNonOptions(); err != nil {
		return err
	}

	if err := p.runMainPhase(noa); err != nil {
		return err
	}

	return nil
}

// publishOption runs the §4.3 retry loop for one tokenized argument:
// try each generation style in [optGenOrder], in order, until one
// produces a Proc that fully matches. A style whose candidate set is
// empty is skipped without being "tried". Returns whether any style
// matched, and whether the match consumed the stream's next token.
func (p *Parser) publishOption(arg *Argument, next *string, delay bool, keeper *ValueKeeper) (matched, needArg bool, err error) {
	for _, g := range optGenOrder {
		ctxs := genOptContexts(g, arg, next, delay)
		if len(ctxs) == 0 {
			continue
		}
		proc := NewProc(0, ctxs...)
		ok, err := dispatch(proc, p.reg.entries, p.reg.callbacks, p.reg, keeper)
		if err != nil {
			return false, false, err
		}
		p.logger.Debug("tried option style",
			zap.Int("style", int(g)), zap.String("name", arg.Name), zap.Bool("matched", ok))
		if ok {
			return true, proc.NeedArgument(), nil
		}
	}
	return false, false, nil
}

// runPositionalPhase publishes the Cmd Proc for noa[0] (if any), then a
// Pos Proc for every 1-based position in noa.
func (p *Parser) runPositionalPhase(noa []string) error {
	total := int64(len(noa))
	if total == 0 {
		return nil
	}

	cmdProc := NewProc(0, genCmdContext(noa[0], total))
	if _, err := dispatch(cmdProc, p.reg.entries, p.reg.callbacks, p.reg, nil); err != nil {
		return err
	}
	p.logger.Debug("published cmd proc", zap.String("value", noa[0]), zap.Bool("matched", cmdProc.IsMatched()))

	for i := int64(1); i <= total; i++ {
		posProc := NewProc(0, genPosContext(noa[i-1], total, i))
		if _, err := dispatch(posProc, p.reg.entries, p.reg.callbacks, p.reg, nil); err != nil {
			return err
		}
		p.logger.Debug("published pos proc", zap.Int64("current", i), zap.Bool("matched", posProc.IsMatched()))
	}
	return nil
}

// drainKeeper assigns every stashed (id, value) pair onto its entry
// and fires the entry's Value callback, in schema-insertion order
// (per §5 "Ordering guarantees"), whatever order the tokens came in.
// Every drained pair was stashed because its DelayContext matched, so
// the callback always fires here regardless of any pending-invocation
// flag (DelayContext deliberately never sets one; see context.go).
func (p *Parser) drainKeeper(keeper *ValueKeeper) error {
	stashed := make(map[Identifier]Value)
	for _, pair := range keeper.Drain() {
		stashed[pair.ID] = pair.Value
	}
	for _, e := range p.reg.entries {
		v, ok := stashed[e.ID()]
		if !ok {
			continue
		}
		e.SetValue(v)
		if _, err := invokeCallback(e, p.reg.callbacks, p.reg, nil); err != nil {
			return err
		}
		p.logger.Debug("drained deferred value", zap.Uint64("id", uint64(e.ID())))
	}
	return nil
}

// runMainPhase publishes the single Main Proc, which matches
// unconditionally.
func (p *Parser) runMainPhase(noa []string) error {
	mainProc := NewProc(0, genMainContext())
	_, err := dispatch(mainProc, p.reg.entries, p.reg.callbacks, p.reg, nil)
	return err
}
