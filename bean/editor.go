// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import "fmt"

// EditorKinds are the kinds of value editors that a [Property]
// can be configured to use.
type EditorKinds int32

const (
	// TextEditor edits a string value; see [TextConfig].
	TextEditor EditorKinds = iota

	// NumberEditor edits a numeric value; see [NumberConfig].
	NumberEditor

	// BeanEditor edits the properties of a nested bean; see [BeanConfig].
	BeanEditor

	// ChoiceEditor selects one of a set of options; see [ChoiceConfig].
	ChoiceEditor
)

// EditorConfig is an opaque descriptor, interpreted by UI code, of how
// the value of a property should be edited. Replacing the config of a
// property sends an [EditorChanged] event.
type EditorConfig interface {

	// EditorKind returns the kind of editor this config is for.
	EditorKind() EditorKinds
}

// TextConfig configures a [TextEditor].
type TextConfig struct {

	// Multiline is whether the text can span multiple lines.
	Multiline bool

	// MaxLength is the maximum number of characters, if > 0.
	MaxLength int
}

func (tc *TextConfig) EditorKind() EditorKinds { return TextEditor }

// NumberConfig configures a [NumberEditor].
type NumberConfig struct {

	// Min is the minimum value.
	Min float64

	// Max is the maximum value.
	Max float64

	// Step is the amount to change the value by for each step.
	Step float64

	// Integer is whether only whole numbers are allowed.
	Integer bool
}

func (nc *NumberConfig) EditorKind() EditorKinds { return NumberEditor }

// Clamp returns the given value clamped to [NumberConfig.Min, NumberConfig.Max].
func (nc *NumberConfig) Clamp(v float64) float64 {
	return min(max(v, nc.Min), nc.Max)
}

// BeanConfig configures a [BeanEditor].
type BeanConfig struct {

	// Expanded is whether the nested bean is initially shown expanded.
	Expanded bool
}

func (bc *BeanConfig) EditorKind() EditorKinds { return BeanEditor }

// ChoiceConfig configures a [ChoiceEditor].
type ChoiceConfig struct {

	// Options are the values that can be chosen.
	Options []string
}

func (cc *ChoiceConfig) EditorKind() EditorKinds { return ChoiceEditor }

// EditorFactory makes a UI editor for the given property.
// The type of the returned editor is up to the UI code.
type EditorFactory func(p *Property) (any, error)

// editorFactories are the registered factories for each kind.
var editorFactories = map[EditorKinds]EditorFactory{}

// RegisterEditor registers the factory used by [NewEditor] for properties
// whose editor config is of the given kind, replacing any existing one.
// UI code typically calls it from an init function.
func RegisterEditor(kind EditorKinds, fun EditorFactory) {
	editorFactories[kind] = fun
}

// NewEditor makes a new editor for the given property using the
// factory registered for the kind of its [EditorConfig].
func NewEditor(p *Property) (any, error) {
	if p == nil {
		return nil, ErrNilProperty
	}
	ec := p.Editor()
	if ec == nil {
		return nil, fmt.Errorf("%w: property %s has no editor config", ErrNoEditor, p)
	}
	fun, ok := editorFactories[ec.EditorKind()]
	if !ok {
		return nil, fmt.Errorf("%w: no factory registered for %v (property %s)", ErrNoEditor, ec.EditorKind(), p)
	}
	return fun(p)
}
