// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"strconv"

	"github.com/pellegre/helios/internal/material"
	"github.com/pellegre/helios/internal/vec3"
)

// SurfaceDef is an unplaced surface template keyed by its user id, the
// input-facing unit addUniverse clones and transforms per cell.
type SurfaceDef struct {
	UserID   int
	Template Surface
}

// OperandDef names one surface a cell definition conjuncts against, with
// Negative mirroring the input syntax's leading '-' for a negative sense.
type OperandDef struct {
	SurfaceUserID int
	Negative      bool
}

// CellDef is one input cell definition: the universe it belongs to, its
// bounding operands, and either a material id (leaf cell) or a fill
// universe id. Transform is this cell's own transformation,
// composed onto the parent context's before any of its surfaces are
// placed.
type CellDef struct {
	UserID         int
	UniverseID     int
	Operands       []OperandDef
	Negated        bool
	Dead           bool
	Transform      Transformation
	MaterialID     int // 0 means "no material" (must have FillUniverseID instead)
	FillUniverseID int // 0 means "no fill" (must have MaterialID instead)
}

// Geometry is the flat arena construction produces: three dense slices of
// surfaces/cells/universes plus the path, reverse and bucket indices that
// make every clone addressable by path-qualified or bare user id.
type Geometry struct {
	surfaces  []Surface
	cells     []*Cell
	universes []*Universe
	base      *Universe

	cellPath    map[int]string
	cellReverse map[string]int
	cellBuckets map[int][]int

	surfacePath    map[int]string
	surfaceReverse map[string]int
	surfaceBuckets map[int][]int

	universeBuckets map[int][]int

	latticeSeq int
}

// New returns an empty geometry arena ready for Build.
func New() *Geometry {
	return &Geometry{
		cellPath:        make(map[int]string),
		cellReverse:     make(map[string]int),
		cellBuckets:     make(map[int][]int),
		surfacePath:     make(map[int]string),
		surfaceReverse:  make(map[string]int),
		surfaceBuckets:  make(map[int][]int),
		universeBuckets: make(map[int][]int),
	}
}

// pathID formats the path-qualified id syntax
// "<localId>[<parentLocal>[<grand…>]]", e.g. "100<3<1".
func pathID(localID int, parentPath string) string {
	s := strconv.Itoa(localID)
	if parentPath == "" {
		return s
	}
	return s + "<" + parentPath
}

// Build runs the addUniverse construction algorithm
// starting at baseUniverseID, registering every surface/cell/universe it
// encounters into this arena. lattices are preprocessed first: each
// generates its own bounding planes and cells directly into the arena,
// and its UserID becomes fillable by any cell definition exactly like an
// ordinary universe id. A lattice id clashing with a cell's universe id
// is a GeometryError.
func (g *Geometry) Build(surfaceDefs []SurfaceDef, cellDefs []CellDef, lattices []*Lattice, baseUniverseID int) error {
	templates := make(map[int]*SurfaceDef, len(surfaceDefs))
	for i := range surfaceDefs {
		templates[surfaceDefs[i].UserID] = &surfaceDefs[i]
	}
	byUniverse := make(map[int][]CellDef)
	for _, cd := range cellDefs {
		byUniverse[cd.UniverseID] = append(byUniverse[cd.UniverseID], cd)
	}

	latticeUniverses := make(map[int]*Universe, len(lattices))
	for _, lat := range lattices {
		// A lattice id stands in for a universe id: cells may freely name
		// it as their FillUniverseID (that is how a cell gets filled by
		// the lattice's generated tiling), but no ordinary cell may be
		// declared directly inside "universe <lattice id>" — the
		// lattice's own generator owns every cell in that universe.
		if _, clash := byUniverse[lat.UserID]; clash {
			return &GeometryError{Where: "lattice " + strconv.Itoa(lat.UserID), Why: "clashes with a cell's universe id"}
		}
		if len(lat.Fills) != lat.NX*lat.NY {
			return &GeometryError{Where: "lattice " + strconv.Itoa(lat.UserID), Why: "number of fill universes does not match nx*ny"}
		}
		uni, surfaces, cells := lat.Expand(g.nextSurfaceID, g.nextCellID)
		g.registerLatticeExpansion(uni, surfaces, cells)
		latticeUniverses[lat.UserID] = uni
	}

	base, err := g.addUniverse(baseUniverseID, byUniverse, templates, map[int]Surface{}, Transformation{}, "", latticeUniverses)
	if err != nil {
		return err
	}
	g.base = base
	return nil
}

// nextSurfaceID/nextCellID hand out fresh user ids for a lattice's
// generated planes/cells before they have been registered in the arena:
// Lattice.Expand needs id allocators but no other arena access.
func (g *Geometry) nextSurfaceID() int { return len(g.surfaces) + 1000000 + g.latticeIDSeq() }
func (g *Geometry) nextCellID() int    { return len(g.cells) + 1000000 + g.latticeIDSeq() }

// latticeIDSeq is a monotonically increasing offset keeping generated
// lattice surface/cell user ids from colliding across multiple lattices
// built in the same geometry.
func (g *Geometry) latticeIDSeq() int {
	g.latticeSeq++
	return g.latticeSeq
}

// registerLatticeExpansion folds an already-built lattice universe's
// surfaces and cells into this arena's flat storage and path indices, at
// the base (unparented) path, since a lattice's internal planes/cells are
// never individually addressed by a user-facing path id the way a regular
// nested cell is.
func (g *Geometry) registerLatticeExpansion(uni *Universe, surfaces []Surface, cells []*Cell) {
	uni.InternalID = len(g.universes)
	g.universes = append(g.universes, uni)
	g.universeBuckets[uni.UserID] = append(g.universeBuckets[uni.UserID], uni.InternalID)

	for _, s := range surfaces {
		s.setInternalID(len(g.surfaces))
		path := strconv.Itoa(s.UserID())
		g.surfaces = append(g.surfaces, s)
		g.surfacePath[s.InternalID()] = path
		g.surfaceReverse[path] = s.InternalID()
		g.surfaceBuckets[s.UserID()] = append(g.surfaceBuckets[s.UserID()], s.InternalID())
	}
	for _, c := range cells {
		c.InternalID = len(g.cells)
		path := strconv.Itoa(c.UserID)
		c.Path = path
		g.cells = append(g.cells, c)
		g.cellPath[c.InternalID] = path
		g.cellReverse[path] = c.InternalID
		g.cellBuckets[c.UserID] = append(g.cellBuckets[c.UserID], c.InternalID)
	}
}

// addUniverse builds one universe: for every
// cell tagged with universeID, resolve its surfaces against the
// accumulated parent surface context (deduplicating clones), register the
// cell, and recurse into any universe it is filled with.
func (g *Geometry) addUniverse(universeID int, byUniverse map[int][]CellDef, templates map[int]*SurfaceDef,
	parentSurfaces map[int]Surface, transformation Transformation, parentPath string, latticeUniverses map[int]*Universe) (*Universe, error) {

	uni := &Universe{UserID: universeID, InternalID: len(g.universes)}
	g.universes = append(g.universes, uni)
	g.universeBuckets[universeID] = append(g.universeBuckets[universeID], uni.InternalID)

	local := make(map[int]Surface, len(parentSurfaces))
	for k, v := range parentSurfaces {
		local[k] = v
	}

	for _, cd := range byUniverse[universeID] {
		if cd.MaterialID == 0 && cd.FillUniverseID == 0 {
			return nil, &GeometryError{Where: "cell " + strconv.Itoa(cd.UserID), Why: "neither a material nor a fill"}
		}
		if cd.FillUniverseID != 0 && cd.FillUniverseID == universeID {
			return nil, &GeometryError{Where: "cell " + strconv.Itoa(cd.UserID), Why: "cell fills its own universe"}
		}

		accumulated := transformation.Add(cd.Transform)

		operands := make([]Operand, 0, len(cd.Operands))
		for _, od := range cd.Operands {
			tmpl, ok := templates[od.SurfaceUserID]
			if !ok {
				return nil, &GeometryError{Where: "cell " + strconv.Itoa(cd.UserID), Why: "unknown surface " + strconv.Itoa(od.SurfaceUserID)}
			}
			surf := g.resolveSurface(tmpl, accumulated, local, parentPath)
			local[od.SurfaceUserID] = surf
			operands = append(operands, Operand{Surface: surf, Sense: !od.Negative})
		}

		path := pathID(cd.UserID, parentPath)
		cell := NewCell(cd.UserID, operands, cd.Negated, cd.Dead)
		cell.InternalID = len(g.cells)
		cell.Path = path
		cell.MaterialID = cd.MaterialID
		g.cells = append(g.cells, cell)
		g.cellPath[cell.InternalID] = path
		g.cellReverse[path] = cell.InternalID
		g.cellBuckets[cd.UserID] = append(g.cellBuckets[cd.UserID], cell.InternalID)
		uni.AddCell(cell)

		if cd.FillUniverseID != 0 {
			if lat, ok := latticeUniverses[cd.FillUniverseID]; ok {
				cell.SetFill(lat)
			} else {
				child, err := g.addUniverse(cd.FillUniverseID, byUniverse, templates, local, accumulated, path, latticeUniverses)
				if err != nil {
					return nil, err
				}
				cell.SetFill(child)
			}
		}
	}
	return uni, nil
}

// resolveSurface clones tmpl under transformation, reusing the
// already-placed surface for the same user id in this lineage if it is
// geometrically equivalent, else registering a new arena entry with a
// fresh internal id and path-qualified user id.
func (g *Geometry) resolveSurface(tmpl *SurfaceDef, transformation Transformation, placed map[int]Surface, parentPath string) Surface {
	clone := tmpl.Template.Transformate(transformation)
	if existing, ok := placed[tmpl.UserID]; ok && existing.Equals(clone) {
		return existing
	}
	clone.setInternalID(len(g.surfaces))
	path := pathID(tmpl.UserID, parentPath)
	g.surfaces = append(g.surfaces, clone)
	g.surfacePath[clone.InternalID()] = path
	g.surfaceReverse[path] = clone.InternalID()
	g.surfaceBuckets[tmpl.UserID] = append(g.surfaceBuckets[tmpl.UserID], clone.InternalID())
	return clone
}

// SetupMaterials resolves every leaf cell's material id against the
// supplied catalog, rejecting any cell left with neither a material nor a
// fill.
func (g *Geometry) SetupMaterials(materials map[int]*material.Material) error {
	for _, c := range g.cells {
		if c.Fill != nil {
			continue
		}
		mat, ok := materials[c.MaterialID]
		if !ok {
			return &GeometryError{Where: "cell " + strconv.Itoa(c.UserID), Why: "unresolved material id " + strconv.Itoa(c.MaterialID)}
		}
		c.Material = mat
	}
	return nil
}

// FindCell resolves the occupant cell of a point from the base universe.
func (g *Geometry) FindCell(pos vec3.Vec3) (*Cell, error) {
	c := g.base.FindCell(pos, nil)
	if c == nil {
		return nil, &GeometryError{Where: "FindCell", Why: "no cell contains the given point"}
	}
	return c, nil
}

// FindCellNear attempts start.FindCell(p) first (the hot path for the
// transport loop, since a particle usually stays in or near its current
// cell after a small step), falling back to a full base-universe search.
func (g *Geometry) FindCellNear(start *Cell, pos vec3.Vec3) (*Cell, error) {
	if start != nil {
		if c := start.FindCell(pos, nil); c != nil {
			return c, nil
		}
	}
	return g.FindCell(pos)
}

// crossNeighbor resolves the next cell across a non-reflecting,
// non-vacuum surface crossing: look up the neighbor cells on the opposite
// side and return the first whose findCell(p, skip=surface) succeeds.
func (g *Geometry) crossNeighbor(surface Surface, pos vec3.Vec3, sense bool) *Cell {
	for _, neighbor := range surface.neighbors(!sense) {
		if found := neighbor.FindCell(pos, surface); found != nil {
			return found
		}
	}
	return nil
}

// GetCellByPath returns the cell registered at the given path-qualified id.
func (g *Geometry) GetCellByPath(path string) (*Cell, bool) {
	idx, ok := g.cellReverse[path]
	if !ok {
		return nil, false
	}
	return g.cells[idx], true
}

// GetCellsByUserID returns every clone registered under a bare (non path-
// qualified) cell user id.
func (g *Geometry) GetCellsByUserID(userID int) []*Cell {
	idxs := g.cellBuckets[userID]
	out := make([]*Cell, len(idxs))
	for i, idx := range idxs {
		out[i] = g.cells[idx]
	}
	return out
}

// GetSurfaceByPath returns the surface registered at the given
// path-qualified id.
func (g *Geometry) GetSurfaceByPath(path string) (Surface, bool) {
	idx, ok := g.surfaceReverse[path]
	if !ok {
		return nil, false
	}
	return g.surfaces[idx], true
}

// GetSurfacesByUserID returns every clone registered under a bare surface
// user id.
func (g *Geometry) GetSurfacesByUserID(userID int) []Surface {
	idxs := g.surfaceBuckets[userID]
	out := make([]Surface, len(idxs))
	for i, idx := range idxs {
		out[i] = g.surfaces[idx]
	}
	return out
}

// Surfaces returns the full surface arena, in internal-id order.
func (g *Geometry) Surfaces() []Surface { return g.surfaces }

// Cells returns the full cell arena, in internal-id order.
func (g *Geometry) Cells() []*Cell { return g.cells }

// Universes returns the full universe arena, in internal-id order.
func (g *Geometry) Universes() []*Universe { return g.universes }

// Base returns the base (universe #0) universe.
func (g *Geometry) Base() *Universe { return g.base }
