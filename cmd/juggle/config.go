package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml"

	"go.dw1.io/juggle"
	"go.dw1.io/juggle/internal/regexp"
)

// ErrInvalidConfig indicates a malformed config file or caster definition.
var ErrInvalidConfig = errors.New("invalid config")

type config struct {
	Verbose int                     `toml:"verbose"`
	Color   *bool                   `toml:"color"`
	Casters map[string]casterConfig `toml:"casters"`
}

// casterConfig defines a custom caster. Exactly one field is set: Chain
// casts through each listed type in turn, Const always succeeds with the given
// string, Match succeeds when the string form of the value matches the
// pattern.
type casterConfig struct {
	Chain []string `toml:"chain"`
	Const *string  `toml:"const"`
	Match *string  `toml:"match"`
}

func loadConfig(path string) (*config, error) {
	cfg := &config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

func (c *config) names() []string {
	names := make([]string, 0, len(c.Casters))
	for name := range c.Casters {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// casters builds the configured casters in name order. Chains cast through r,
// so they may refer to built-ins and to each other.
func (c *config) casters(r *juggle.Registry) (*juggle.Casters, error) {
	out := juggle.NewCasters()
	for _, name := range c.names() {
		fn, err := c.Casters[name].build(name, r)
		if err != nil {
			return nil, fmt.Errorf("%w: caster %q: %v", ErrInvalidConfig, name, err)
		}
		out.Set(name, fn)
	}

	return out, nil
}

func (cc casterConfig) build(name string, r *juggle.Registry) (juggle.Caster, error) {
	if juggle.Resolve(name) != name || slices.Contains(juggle.Builtins(), name) {
		return nil, errors.New("built-in types cannot be redefined")
	}

	set := 0
	for _, ok := range []bool{len(cc.Chain) > 0, cc.Const != nil, cc.Match != nil} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, errors.New("one of chain, const or match is required")
	case set > 1:
		return nil, errors.New("chain, const and match are mutually exclusive")
	case cc.Const != nil:
		v := *cc.Const
		return func(any, juggle.Tag) juggle.Result { return juggle.Success(v) }, nil
	case cc.Match != nil:
		return matchCaster(*cc.Match, r)
	}

	chain := make([]string, len(cc.Chain))
	for i, step := range cc.Chain {
		chain[i] = juggle.Resolve(step)
		if chain[i] == name {
			return nil, errors.New("chain refers to itself")
		}
	}

	return func(v any, _ juggle.Tag) juggle.Result {
		res := juggle.Success(v)
		for _, step := range chain {
			next, err := r.CastTo(step, res.Value())
			if err != nil || !next.OK() {
				return juggle.Failure
			}
			res = next
		}
		return res
	}, nil
}

// matchCaster returns the capture groups of pattern in the string form of the
// value, or the whole match when the pattern has no groups.
func matchCaster(pattern string, r *juggle.Registry) (juggle.Caster, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("match: %v", err)
	}

	return func(v any, _ juggle.Tag) juggle.Result {
		res, err := r.CastTo(juggle.TypeStr, v)
		if err != nil {
			return juggle.Failure
		}
		s, ok := res.Str()
		if !ok {
			return juggle.Failure
		}

		m := re.FindStringSubmatch(s)
		switch len(m) {
		case 0:
			return juggle.Failure
		case 1:
			return juggle.Success(m[0])
		}

		groups := make([]any, len(m)-1)
		for i, g := range m[1:] {
			groups[i] = g
		}

		return juggle.Success(groups)
	}, nil
}

// validate checks, once all casters are loaded, that every chain step
// resolves and that no chain leads back to its own caster.
func (c *config) validate(r *juggle.Registry) error {
	names := c.names()
	for _, name := range names {
		for _, step := range c.Casters[name].Chain {
			if _, err := r.Caster(step); err != nil {
				return fmt.Errorf("%w: caster %q: %v", ErrInvalidConfig, name, err)
			}
		}
	}

	const (
		active = iota + 1
		done
	)
	state := make(map[string]int, len(names))

	var walk func(name string, path []string) error
	walk = func(name string, path []string) error {
		path = append(path, name)
		switch state[name] {
		case active:
			return fmt.Errorf("%w: chain cycle %s", ErrInvalidConfig, strings.Join(path, " -> "))
		case done:
			return nil
		}

		state[name] = active
		for _, step := range c.Casters[name].Chain {
			step = juggle.Resolve(step)
			if _, ok := c.Casters[step]; !ok {
				continue
			}
			if err := walk(step, path); err != nil {
				return err
			}
		}
		state[name] = done

		return nil
	}

	for _, name := range names {
		if err := walk(name, nil); err != nil {
			return err
		}
	}

	return nil
}
