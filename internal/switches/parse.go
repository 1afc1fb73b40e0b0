// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package switches

import (
	"fmt"

	"go.uber.org/zap"
)

// parseState is the state of the single left-to-right pass.
type parseState int

const (
	collectingLeading   parseState = iota // no switch seen yet
	collectingForSwitch                   // values go to the current switch
)

// parser carries the pass over one token vector.
type parser struct {
	reg     *Registry
	tokens  []string
	last    Handle // rightmost switch token in the vector
	state   parseState
	current Handle
	opened  int // index of the token that selected current
}

// Parse classifies tokens in a single pass. Every token that is a
// well-formed prefixed invocation of a defined switch selects that switch
// and is never taken as a value. Other tokens are, in order:
//
//   - leading stand-alone arguments until the first switch,
//   - values of the current switch until its maximum is reached,
//   - trailing stand-alone arguments once the rightmost switch in tokens
//     is full; values beyond the maximum of any earlier switch are dropped.
//
// A switch used a second time fails with DuplicateSwitchUse, except the
// switch named by the rightmost switch token, which may repeat and
// accumulates values across occurrences. This exemption is an artifact of
// how the rightmost switch is located and is likely a latent defect; it is
// kept as is.
//
// A switch left below its minimum, either at the end of tokens or when
// another switch is selected, fails with ArityNotSatisfied.
//
// Parse writes Used and Args on the switches and appends to the registry's
// stand-alone lists. Call Reset before parsing a new vector; after an error
// the registry holds partial state and must be Reset before reuse.
func (r *Registry) Parse(tokens []string) (*ParseResult, error) {
	p := &parser{
		reg:     r,
		tokens:  tokens,
		last:    r.findLastSwitch(tokens),
		state:   collectingLeading,
		current: noSwitch,
		opened:  -1,
	}

	if err := p.run(); err != nil {
		r.logger.Debug("parse failed",
			zap.Int("tokens", len(tokens)),
			zap.Error(err))
		return nil, err
	}

	res := r.snapshot()
	r.logger.Debug("parse complete",
		zap.Int("tokens", len(tokens)),
		zap.Stringer("last_switch", p.lastSwitch()),
		zap.Int("leading", len(res.Leading)),
		zap.Int("trailing", len(res.Trailing)),
		zap.Int("used", len(res.Used)))
	return res, nil
}

// findLastSwitch scans right to left for the first switch token.
func (r *Registry) findLastSwitch(tokens []string) Handle {
	for i := len(tokens) - 1; i >= 0; i-- {
		if h, ok := r.switchToken(tokens[i]); ok {
			return h
		}
	}
	return noSwitch
}

func (p *parser) run() error {
	for i, tok := range p.tokens {
		if h, ok := p.reg.switchToken(tok); ok {
			if err := p.selectSwitch(h, i); err != nil {
				return err
			}
			continue
		}
		p.assimilate(tok)
	}
	return p.checkArity(len(p.tokens))
}

func (p *parser) selectSwitch(h Handle, index int) error {
	if h != p.current {
		if err := p.checkArity(index); err != nil {
			return err
		}
	}

	cand := p.reg.switches[h]
	if cand.used && h != p.last {
		return p.errorAt(DuplicateSwitchUse, index, h,
			"switch may appear only once")
	}
	cand.used = true
	p.current = h
	p.opened = index
	p.state = collectingForSwitch
	return nil
}

func (p *parser) assimilate(tok string) {
	switch p.state {
	case collectingLeading:
		p.reg.leading = append(p.reg.leading, tok)
	case collectingForSwitch:
		s := p.reg.switches[p.current]
		if len(s.args) < s.maxArgs {
			s.args = append(s.args, tok)
			return
		}
		if p.current == p.last {
			p.reg.trailing = append(p.reg.trailing, tok)
		}
	}
}

// checkArity fails if the current switch has fewer values than its minimum.
func (p *parser) checkArity(index int) error {
	if p.state != collectingForSwitch {
		return nil
	}
	s := p.reg.switches[p.current]
	if len(s.args) >= s.minArgs {
		return nil
	}
	reason := fmt.Sprintf("expected at least %d argument(s), got %d", s.minArgs, len(s.args))
	if index < len(p.tokens) {
		reason += fmt.Sprintf(" before %q", p.tokens[index])
	}
	return p.errorAt(ArityNotSatisfied, p.opened, p.current, reason)
}

func (p *parser) errorAt(kind ErrorKind, index int, h Handle, reason string) error {
	s := p.reg.switches[h]
	return &ParseError{
		Kind:      kind,
		Token:     p.tokens[index],
		Index:     index,
		Switch:    h,
		LongName:  s.long,
		ShortName: s.short,
		Reason:    reason,
	}
}

func (p *parser) lastSwitch() fmt.Stringer {
	if p.last == noSwitch {
		return noneStringer{}
	}
	return p.reg.switches[p.last]
}

type noneStringer struct{}

func (noneStringer) String() string { return "none" }
