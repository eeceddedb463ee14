// Package shell expands $VAR and ${VAR} references in configuration values.
package shell

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ErrUnsetVariable is the sentinel error wrapped by UnsetVariableError.
var ErrUnsetVariable = errors.New("unset variable")

// UnsetVariableError is returned when a referenced variable is not in the environment.
type UnsetVariableError struct {
	Name  string
	Input string
}

func (e *UnsetVariableError) Error() string {
	return fmt.Sprintf("missing environment variable %q: %s", e.Name, e.Input)
}

// Unwrap returns ErrUnsetVariable for errors.Is() compatibility.
func (e *UnsetVariableError) Unwrap() error { return ErrUnsetVariable }

// Env maps variable names to values.
type Env map[string]string

// OSEnv returns a snapshot of the process environment.
func OSEnv() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok {
			env[name] = value
		}
	}
	return env
}

func (e Env) environ() expand.Environ {
	pairs := make([]string, 0, len(e))
	for name, value := range e {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)
	return expand.ListEnviron(pairs...)
}

// Expand substitutes variable references in s using env.
//
// Both $VAR and ${VAR} forms are expanded, as are the usual parameter expansion
// operators such as ${VAR:-default}. A backslash before $ yields a literal dollar
// sign. Every other character, including other backslashes, backquotes and a $
// not followed by a name or brace, is kept as is. Referencing a variable that is
// not set fails with UnsetVariableError.
func Expand(s string, env Env) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	word, err := syntax.NewParser().Document(strings.NewReader(quoteLiterals(s)))
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", s, err)
	}

	cfg := &expand.Config{
		Env:     env.environ(),
		NoUnset: true,
	}
	out, err := expand.Document(cfg, word)
	if err != nil {
		if name, ok := unsetName(err); ok {
			return "", &UnsetVariableError{Name: name, Input: s}
		}
		return "", fmt.Errorf("expand %q: %w", s, err)
	}

	return out, nil
}

// quoteLiterals escapes everything a here-document would otherwise interpret,
// leaving only \$, $NAME and ${...} active.
func quoteLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '$':
			b.WriteString(`\$`)
			i++
		case c == '\\' || c == '`':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '$' && (i+1 == len(s) || !startsParam(s[i+1])):
			b.WriteString(`\$`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func startsParam(c byte) bool {
	return c == '{' || c == '_' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func unsetName(err error) (string, bool) {
	var node *syntax.ParamExp
	var byValue expand.UnsetParameterError
	var byPointer *expand.UnsetParameterError
	switch {
	case errors.As(err, &byValue):
		node = byValue.Node
	case errors.As(err, &byPointer):
		node = byPointer.Node
	}
	if node == nil || node.Param == nil {
		return "", false
	}
	return node.Param.Value, true
}
