// Package model defines the data structures of the documentation tree.
package model

import (
	"fmt"
	"strings"
)

// Kind classifies what a reflection documents.
type Kind int

// Available Kind values.
const (
	KindProject Kind = iota
	KindModule
	KindNamespace
	KindClass
	KindInterface
	KindFunction
	KindMethod
	KindVariable
	KindField
	KindTypeAlias
)

var kindNames = map[Kind]string{
	KindProject:   "project",
	KindModule:    "module",
	KindNamespace: "namespace",
	KindClass:     "class",
	KindInterface: "interface",
	KindFunction:  "function",
	KindMethod:    "method",
	KindVariable:  "variable",
	KindField:     "field",
	KindTypeAlias: "type-alias",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Groupable reports whether directives may rename or merge reflections of this kind.
func (k Kind) Groupable() bool {
	return k == KindModule || k == KindNamespace
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown kind %q", s)
}
