// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bean

import (
	"fmt"
)

// graphCopier copies a graph in two passes: first every bean and
// property is copied, recording the mapping from originals to copies,
// and then the sources of the copied properties are set using the
// mapping, so that they never refer to the originals.
type graphCopier struct {

	// beans maps original beans to their copies. It includes the
	// interface beans and views of all copied graphs.
	beans map[Bean]Bean

	// properties maps original properties to their copies.
	properties map[*Property]*Property

	// order is the original properties in the order copied.
	order []*Property

	// copying is the graphs whose first pass is in progress.
	copying map[*Graph]bool
}

// CopyGraph returns a deep copy of the graph, including nested graphs.
// Every bean is copied with [Bean.Copy] at the same position, and every
// property with a source in the graph gets the copy of that source as
// its source. A bean that is in more than one of the copied graphs is
// copied once, and the copy is in the same graphs. It returns an
// [ErrUnresolvedSource] error if a property uses a source owned by a
// bean outside of the graph, and an [ErrGraphCycle] error if the graph
// contains itself.
func (g *Graph) CopyGraph() (*Graph, error) {
	gc := &graphCopier{beans: map[Bean]Bean{}, properties: map[*Property]*Property{}, copying: map[*Graph]bool{}}
	ng, err := gc.copyGraph(g)
	if err != nil {
		return nil, err
	}
	if err := gc.relink(); err != nil {
		return nil, err
	}
	return ng, nil
}

// copyGraph does the first pass for the given graph and the beans in it.
func (gc *graphCopier) copyGraph(g *Graph) (*Graph, error) {
	gc.copying[g] = true
	defer delete(gc.copying, g)
	ng := NewGraph(g.name)
	*ng.positions[ng.inputs] = *g.positions[g.inputs]
	*ng.positions[ng.outputs] = *g.positions[g.outputs]
	gc.beans[g] = ng
	gc.beans[g.iface] = ng.iface
	gc.beans[g.inputs] = ng.inputs
	gc.beans[g.outputs] = ng.outputs
	for _, p := range g.iface.properties {
		c, err := p.Copy()
		if err != nil {
			return nil, err
		}
		if err := ng.iface.AddProperty(c); err != nil {
			return nil, err
		}
		gc.add(p, c)
	}
	for _, b := range g.order {
		if b == Bean(g.inputs) || b == Bean(g.outputs) {
			continue
		}
		nb, err := gc.copyMember(b)
		if err != nil {
			return nil, err
		}
		pos := g.positions[b]
		if err := ng.AddBean(nb, pos.X, pos.Y); err != nil {
			return nil, err
		}
	}
	return ng, nil
}

// copyMember returns the copy of the given bean of a graph, copying it
// unless it has already been copied as a bean of another graph.
func (gc *graphCopier) copyMember(b Bean) (Bean, error) {
	sub, isGraph := b.(*Graph)
	if isGraph && gc.copying[sub] {
		return nil, fmt.Errorf("%w: copying graph %q", ErrGraphCycle, sub.name)
	}
	if nb, ok := gc.beans[b]; ok {
		return nb, nil
	}
	if isGraph {
		return gc.copyGraph(sub)
	}
	return gc.copyBean(b)
}

// copyBean copies the given non-graph bean and records the
// correspondence of its properties with those of the copy:
// by index when the copy has the same property names in the
// same order, and by name otherwise.
func (gc *graphCopier) copyBean(b Bean) (Bean, error) {
	nb, err := b.Copy()
	if err != nil {
		return nil, fmt.Errorf("copying bean %q: %w", b.Name(), err)
	}
	gc.beans[b] = nb
	olds, news := b.Properties(), nb.Properties()
	for i, p := range olds {
		var c *Property
		if i < len(news) && news[i].name == p.name {
			c = news[i]
		} else if c, err = nb.PropertyByName(p.name); err != nil {
			if p.source != nil {
				return nil, fmt.Errorf("%w: copy of bean %q has no property %q", ErrUnresolvedSource, b.Name(), p.name)
			}
			continue
		}
		gc.add(p, c)
	}
	return nb, nil
}

// add records that c is the copy of p.
func (gc *graphCopier) add(p, c *Property) {
	gc.properties[p] = c
	gc.order = append(gc.order, p)
}

// relink does the second pass, setting the sources of the copies.
func (gc *graphCopier) relink() error {
	for _, p := range gc.order {
		src := p.source
		if src == nil {
			continue
		}
		nsrc, err := gc.mapSource(p, src)
		if err != nil {
			return err
		}
		if err := gc.properties[p].SetSource(nsrc); err != nil {
			return fmt.Errorf("relinking copy of %s: %w", p, err)
		}
	}
	return nil
}

// mapSource returns the copy of the given source of the given property.
func (gc *graphCopier) mapSource(p, src *Property) (*Property, error) {
	owner := src.bean
	nowner, ok := gc.beans[owner]
	if owner == nil || !ok {
		return nil, fmt.Errorf("%w: %s uses %s, which is not in the copied graph", ErrUnresolvedSource, p, src)
	}
	if c, ok := gc.properties[src]; ok {
		return c, nil
	}
	c, err := nowner.PropertyByName(src.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvedSource, err)
	}
	return c, nil
}
