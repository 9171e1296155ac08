package json

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"go.dw1.io/juggle"
)

var api = sonic.ConfigStd

// ErrSyntax is wrapped by Decode when the input is not a single JSON value.
var ErrSyntax = errors.New("json: invalid document")

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent encodes a Go value as indented JSON using the current API config.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// SetConfig sets the configuration used by Marshal and MarshalIndent.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}

// Decode parses a single JSON value. Objects become *juggle.Map with keys in
// document order, arrays []any, integral numbers int, other numbers float64.
func Decode(data []byte) (any, error) {
	root, err := sonic.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := root.LoadAll(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return fromNode(&root)
}

func fromNode(n *ast.Node) (any, error) {
	switch n.Type() {
	case ast.V_NULL:
		return nil, nil
	case ast.V_TRUE:
		return true, nil
	case ast.V_FALSE:
		return false, nil
	case ast.V_STRING:
		return n.String()
	case ast.V_NUMBER:
		num, err := n.Number()
		if err != nil {
			return nil, err
		}
		v, _ := juggle.TagOf(num)

		return v, nil
	case ast.V_ARRAY:
		it, err := n.Values()
		if err != nil {
			return nil, err
		}

		list := []any{}
		var elem ast.Node
		for it.Next(&elem) {
			v, err := fromNode(&elem)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}

		return list, nil
	case ast.V_OBJECT:
		it, err := n.Properties()
		if err != nil {
			return nil, err
		}

		m := juggle.NewMap()
		var pair ast.Pair
		for it.Next(&pair) {
			v, err := fromNode(&pair.Value)
			if err != nil {
				return nil, err
			}
			m.Set(pair.Key, v)
		}

		return m, nil
	}

	return nil, fmt.Errorf("%w: unexpected node type %d", ErrSyntax, n.Type())
}
