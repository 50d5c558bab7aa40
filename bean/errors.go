// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import "cogentcore.org/nodegraph/base/errors"

// These errors are returned, wrapped with details about the offending
// entity, when a caller violates the contract of a mutation method.
// They should be checked with [errors.Is].
var (
	// ErrInvalidSource is returned by [Property.SetSource] when the source
	// is the property itself, would create a cycle, or has an incompatible type.
	ErrInvalidSource = errors.New("invalid source")

	// ErrCyclicResolution is returned by [Property.Resolve] when the
	// source chain of a property loops back on itself.
	ErrCyclicResolution = errors.New("cyclic source resolution")

	// ErrNilProperty is returned when a nil property is given.
	ErrNilProperty = errors.New("nil property")

	// ErrDuplicateProperty is returned when adding a property
	// that a bean already contains.
	ErrDuplicateProperty = errors.New("duplicate property")

	// ErrUnknownProperty is returned when a property is not in a bean.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrBeanAlreadySet is returned when adding a property that
	// already belongs to a different bean.
	ErrBeanAlreadySet = errors.New("property already belongs to another bean")

	// ErrNilBean is returned when a nil bean is given.
	ErrNilBean = errors.New("nil bean")

	// ErrDuplicateBean is returned when adding a bean that
	// a graph already contains.
	ErrDuplicateBean = errors.New("duplicate bean")

	// ErrInvalidPosition is returned when a bean is placed
	// at a position that is not finite.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrGraphCycle is returned when adding a graph to a graph it contains,
	// directly or through nested graphs, or to itself.
	ErrGraphCycle = errors.New("graph contains itself")

	// ErrUnknownBean is returned when a bean is not in a graph.
	ErrUnknownBean = errors.New("unknown bean")

	// ErrUnresolvedSource is returned by [Graph.CopyGraph] when a property
	// uses a source owned by a bean outside of the copied graph.
	ErrUnresolvedSource = errors.New("unresolved source")

	// ErrNoEditor is returned by [NewEditor] when a property has
	// no editor configuration or no factory is registered for its kind.
	ErrNoEditor = errors.New("no editor")
)
