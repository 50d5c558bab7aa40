// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"cogentcore.org/nodegraph/base/suggest"
)

// Position is the position of a bean in the coordinate space of a [Graph].
type Position struct {
	X, Y float32
}

// IsFinite returns whether both coordinates are finite numbers.
func (p Position) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// checkPosition returns an [ErrInvalidPosition] error
// if the given coordinates are not finite.
func checkPosition(b Bean, x, y float32) error {
	if (Position{X: x, Y: y}).IsFinite() {
		return nil
	}
	return fmt.Errorf("%w: (%v, %v) for bean %s", ErrInvalidPosition, x, y, beanName(b))
}

// GraphLayout has the positions at which a new [Graph] places
// the views of its interface properties.
type GraphLayout struct {

	// Inputs is the position of the [Graph.InternalInputs] view.
	Inputs Position

	// Outputs is the position of the [Graph.InternalOutputs] view.
	Outputs Position
}

// Layout is the [GraphLayout] used by [NewGraph].
var Layout = GraphLayout{
	Inputs:  Position{X: -400},
	Outputs: Position{X: 400},
}

// Graph is a bean that contains other beans at positions, forming a
// node graph in which the properties of the beans are connected through
// their sources. The properties of a graph are those of its interface
// bean, which act as the inputs and outputs of the graph as a whole.
//
// Inside the graph, the interface is presented as two more beans,
// [Graph.InternalInputs] and [Graph.InternalOutputs], so that the
// beans in the graph can connect to the interface like they connect
// to each other.
type Graph struct {

	// name is the name of the graph.
	name string

	// iface is the interface bean.
	iface *Dynamic

	// inputs is the view of input properties of the interface.
	inputs *View

	// outputs is the view of output properties of the interface.
	outputs *View

	// order is the beans in the graph in the order added.
	order []Bean

	// positions are the positions of the beans in the graph.
	positions map[Bean]*Position

	// listeners are the registered listener functions.
	listeners Listeners

	// OnBeanAdded is called when a bean is added to the graph,
	// before the [BeanAdded] event is sent to listeners.
	OnBeanAdded func(b Bean, pos *Position)

	// OnBeanRemoved is called when a bean is removed from the graph,
	// before the [BeanRemoved] event is sent to listeners.
	OnBeanRemoved func(b Bean, pos *Position)
}

// NewGraph returns a new empty [Graph] with the given name,
// with its interface views placed according to [Layout].
func NewGraph(name string) *Graph {
	g := &Graph{name: name, positions: map[Bean]*Position{}}
	g.iface = NewDynamic(name)
	g.iface.OnAny(g.relayInterface)
	g.inputs = NewView(name+" Inputs", g.iface, func(p *Property) bool { return p.Direction().IsInput() })
	g.outputs = NewView(name+" Outputs", g.iface, func(p *Property) bool { return p.Direction().IsOutput() })
	g.place(g.inputs, &Position{X: Layout.Inputs.X, Y: Layout.Inputs.Y})
	g.place(g.outputs, &Position{X: Layout.Outputs.X, Y: Layout.Outputs.Y})
	return g
}

func (g *Graph) String() string {
	return fmt.Sprintf("%q", g.name)
}

func (g *Graph) Name() string {
	return g.name
}

// SetName sets the name of the graph and its interface bean,
// and renames the interface views to match.
func (g *Graph) SetName(name string) {
	if name == g.name {
		return
	}
	old := g.name
	g.name = name
	g.iface.SetName(name)
	g.inputs.SetName(name + " Inputs")
	g.outputs.SetName(name + " Outputs")
	g.listeners.Call(&Event{Type: BeanChanged, Bean: g, Old: old, New: name})
}

// Interface returns the interface bean of the graph, whose
// properties are the inputs and outputs of the graph.
func (g *Graph) Interface() *Dynamic {
	return g.iface
}

// InternalInputs returns the view of the input-capable properties
// of the interface, as a bean in the graph.
func (g *Graph) InternalInputs() *View {
	return g.inputs
}

// InternalOutputs returns the view of the output-capable properties
// of the interface, as a bean in the graph.
func (g *Graph) InternalOutputs() *View {
	return g.outputs
}

func (g *Graph) Properties() []*Property {
	return g.iface.Properties()
}

func (g *Graph) PropertyByName(name string) (*Property, error) {
	return g.iface.PropertyByName(name)
}

// AddProperty adds the given property to the interface bean.
func (g *Graph) AddProperty(p *Property) error {
	return g.iface.AddProperty(p)
}

// RemoveProperty removes the given property from the interface bean.
func (g *Graph) RemoveProperty(p *Property) error {
	return g.iface.RemoveProperty(p)
}

// relayInterface forwards events about interface properties to our
// listeners. Renames of the interface bean are not forwarded, since
// they only happen through [Graph.SetName].
func (g *Graph) relayInterface(e *Event) {
	if e.Type == BeanChanged {
		return
	}
	g.listeners.Call(e)
}

func (g *Graph) On(typ EventTypes, fun func(e *Event)) ListenerID {
	return g.listeners.On(typ, fun)
}

func (g *Graph) OnAny(fun func(e *Event)) ListenerID {
	return g.listeners.OnAny(fun)
}

func (g *Graph) Off(id ListenerID) bool {
	return g.listeners.Off(id)
}

// Beans returns the beans in the graph in the order they were added,
// starting with the two interface views.
func (g *Graph) Beans() []Bean {
	return slices.Clone(g.order)
}

// NumBeans returns the number of beans in the graph,
// including the two interface views.
func (g *Graph) NumBeans() int {
	return len(g.order)
}

// Contains returns whether the given bean is in the graph.
func (g *Graph) Contains(b Bean) bool {
	_, ok := g.positions[b]
	return ok
}

// BeanPosition returns the position of the given bean in the graph.
// The position is updated in place when the bean is moved.
func (g *Graph) BeanPosition(b Bean) (*Position, bool) {
	pos, ok := g.positions[b]
	return pos, ok
}

// BeanByName returns the first bean in the graph with the given name,
// or an [ErrUnknownBean] error if there is none.
func (g *Graph) BeanByName(name string) (Bean, error) {
	names := make([]string, len(g.order))
	for i, b := range g.order {
		if b.Name() == name {
			return b, nil
		}
		names[i] = b.Name()
	}
	return nil, fmt.Errorf("%w: graph %q has no bean %q%s", ErrUnknownBean, g.name, name, suggest.DidYouMean(name, names))
}

// reaches returns whether the graph is the given graph
// or contains it, directly or through nested graphs.
func (g *Graph) reaches(target *Graph) bool {
	visited := map[*Graph]bool{}
	stack := []*Graph{g}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, b := range cur.order {
			if sub, ok := b.(*Graph); ok {
				stack = append(stack, sub)
			}
		}
	}
	return false
}

// place adds the bean at the given position without sending events.
func (g *Graph) place(b Bean, pos *Position) {
	g.order = append(g.order, b)
	g.positions[b] = pos
}

// AddBean adds the given bean to the graph at the given position.
// It calls [Graph.OnBeanAdded] and then sends [BeanAdded].
// It returns an error if the bean is nil or already in the graph, or if
// it is a graph that is or contains this graph.
func (g *Graph) AddBean(b Bean, x, y float32) error {
	if b == nil {
		return fmt.Errorf("%w: adding to graph %q", ErrNilBean, g.name)
	}
	if g.Contains(b) {
		return fmt.Errorf("%w: bean %q is already in graph %q", ErrDuplicateBean, b.Name(), g.name)
	}
	if err := checkPosition(b, x, y); err != nil {
		return err
	}
	if sub, ok := b.(*Graph); ok && sub.reaches(g) {
		return fmt.Errorf("%w: graph %q can not be added to graph %q", ErrGraphCycle, sub.name, g.name)
	}
	pos := &Position{X: x, Y: y}
	g.place(b, pos)
	if g.OnBeanAdded != nil {
		g.OnBeanAdded(b, pos)
	}
	g.listeners.Call(&Event{Type: BeanAdded, Bean: b, Position: pos})
	return nil
}

// RemoveBean removes the given bean from the graph, calling
// [Graph.OnBeanRemoved] and then sending [BeanRemoved] with its last
// position. It does nothing if the bean is not in the graph or is one
// of the interface views, which are always in the graph.
func (g *Graph) RemoveBean(b Bean) {
	pos, ok := g.positions[b]
	if !ok || b == Bean(g.inputs) || b == Bean(g.outputs) {
		return
	}
	delete(g.positions, b)
	g.order = slices.DeleteFunc(g.order, func(o Bean) bool { return o == b })
	if g.OnBeanRemoved != nil {
		g.OnBeanRemoved(b, pos)
	}
	g.listeners.Call(&Event{Type: BeanRemoved, Bean: b, Position: pos})
}

// SetBeanPosition moves the given bean in the graph to the given
// position and sends [BeanMoved]. The existing [Position] of the bean
// is updated in place. It returns an [ErrUnknownBean] error if the
// bean is not in the graph, and an [ErrInvalidPosition] error if the
// position is not finite.
func (g *Graph) SetBeanPosition(b Bean, x, y float32) error {
	pos, ok := g.positions[b]
	if !ok {
		return fmt.Errorf("%w: bean %s is not in graph %q", ErrUnknownBean, beanName(b), g.name)
	}
	if err := checkPosition(b, x, y); err != nil {
		return err
	}
	pos.X, pos.Y = x, y
	g.listeners.Call(&Event{Type: BeanMoved, Bean: b, Position: pos})
	return nil
}

// Copy returns a deep copy of the graph; see [Graph.CopyGraph].
func (g *Graph) Copy() (Bean, error) {
	return g.CopyGraph()
}

// beanName returns the quoted name of the bean, handling nil.
func beanName(b Bean) string {
	if b == nil {
		return "nil"
	}
	return fmt.Sprintf("%q", b.Name())
}
