package debugs

import (
	"github.com/reusee/calc/calclang"
	"go.starlark.net/starlark"
)

// Builtins returns starlark functions exposing the calc pipeline stages.
//
//	calc(text) -> float
//	tokens(text) -> list of token strings
//	tree(text) -> parenthesized expression tree
func Builtins() starlark.StringDict {
	return starlark.StringDict{
		"calc":   starlark.NewBuiltin("calc", calcBuiltin),
		"tokens": starlark.NewBuiltin("tokens", tokensBuiltin),
		"tree":   starlark.NewBuiltin("tree", treeBuiltin),
	}
}

func textArg(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (string, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
		return "", err
	}
	return text, nil
}

func calcBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	text, err := textArg(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	value, err := calclang.Run(thread.Name, text)
	if err != nil {
		return nil, err
	}
	return starlark.Float(value.Number), nil
}

func tokensBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	text, err := textArg(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	tokens, err := calclang.Tokenize(thread.Name, text)
	if err != nil {
		return nil, err
	}
	elems := make([]starlark.Value, 0, len(tokens))
	for _, tok := range tokens {
		elems = append(elems, starlark.String(tok.String()))
	}
	return starlark.NewList(elems), nil
}

func treeBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	text, err := textArg(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	node, err := calclang.Compile(thread.Name, text)
	if err != nil {
		return nil, err
	}
	return starlark.String(node.String()), nil
}
