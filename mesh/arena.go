package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/frenebo/VMTutorial-pjk/geom"
)

// ArenaMesh is a dense-array, arena-indexed reference implementation of
// Mesh: every vertex, edge, half-edge and face is stored in a flat slice
// and addressed by its position in that slice, the way gofem's own
// inp.Mesh/inp.Cell arrays are indexed by dense integer id
// (ele/factory.go's cell.Id). It exists for tests and the demo command; a
// real embedding (Python bindings, a file-backed mesh) would implement
// the Mesh interface directly over its own storage instead.
type ArenaMesh struct {
	verts     []*arenaVertex
	edges     []*arenaEdge
	halfEdges []*arenaHalfEdge
	faces     []*arenaFace
}

type arenaVertex struct {
	id  int
	pos geom.Vec2
}

func (v *arenaVertex) Id() int        { return v.id }
func (v *arenaVertex) Pos() geom.Vec2 { return v.pos }

type arenaEdge struct {
	id int
	he *arenaHalfEdge // the first half-edge created for this edge
}

func (e *arenaEdge) Id() int        { return e.id }
func (e *arenaEdge) HalfEdge() HalfEdge { return e.he }

type arenaHalfEdge struct {
	id       int
	from, to *arenaVertex
	edge     *arenaEdge
	face     *arenaFace
	next     *arenaHalfEdge
}

func (h *arenaHalfEdge) Id() int        { return h.id }
func (h *arenaHalfEdge) From() Vertex   { return h.from }
func (h *arenaHalfEdge) To() Vertex     { return h.to }
func (h *arenaHalfEdge) Edge() Edge     { return h.edge }
func (h *arenaHalfEdge) Face() Face     { return h.face }
func (h *arenaHalfEdge) Next() HalfEdge { return h.next }

type arenaFace struct {
	id   int
	loop []*arenaHalfEdge // cyclic, bounding this face
}

func (f *arenaFace) Id() int { return f.id }
func (f *arenaFace) Circulator() []HalfEdge {
	out := make([]HalfEdge, len(f.loop))
	for i, h := range f.loop {
		out[i] = h
	}
	return out
}

// NewPolygonMesh builds an ArenaMesh from a list of vertex positions
// (indexed 0..len(positions)-1, these become the vertex ids) and a list of
// faces, each given as a cyclic (counter-clockwise) loop of vertex indices.
// Two faces that share a directed pair of vertices in opposite order share
// one Edge with two opposing HalfEdges. No boundary half-edges are created:
// a loop edge with no twin yields an Edge bounded by that single half-edge.
func NewPolygonMesh(positions []geom.Vec2, faceLoops [][]int) *ArenaMesh {
	m := &ArenaMesh{}
	for i, p := range positions {
		m.verts = append(m.verts, &arenaVertex{id: i, pos: p})
	}

	// twin lookup: an ordered (from,to) vertex-id pair -> the half-edge
	// already created for the opposite direction (to,from), awaiting a twin.
	type key struct{ a, b int }
	pending := make(map[key]*arenaHalfEdge)

	for fid, loop := range faceLoops {
		if len(loop) < 3 {
			chk.Panic("mesh.NewPolygonMesh: face %d has fewer than 3 vertices", fid)
		}
		face := &arenaFace{id: fid}
		n := len(loop)
		loopHEs := make([]*arenaHalfEdge, n)
		for k := 0; k < n; k++ {
			fromId := loop[k]
			toId := loop[(k+1)%n]
			he := &arenaHalfEdge{
				id:   len(m.halfEdges),
				from: m.verts[fromId],
				to:   m.verts[toId],
				face: face,
			}
			m.halfEdges = append(m.halfEdges, he)
			loopHEs[k] = he

			twinKey := key{toId, fromId}
			if twin, ok := pending[twinKey]; ok {
				he.edge = twin.edge
				delete(pending, twinKey)
			} else {
				he.edge = &arenaEdge{id: len(m.edges), he: he}
				m.edges = append(m.edges, he.edge)
				pending[key{fromId, toId}] = he
			}
		}
		for k := 0; k < n; k++ {
			loopHEs[k].next = loopHEs[(k+1)%n]
		}
		face.loop = loopHEs
		m.faces = append(m.faces, face)
	}
	return m
}

// SetPos updates a vertex's position. Reserved for callers between compute
// calls (e.g. an integrator); the core itself never calls this.
func (m *ArenaMesh) SetPos(vertexId int, p geom.Vec2) {
	m.verts[vertexId].pos = p
}

func (m *ArenaMesh) NumVertices() int { return len(m.verts) }

func (m *ArenaMesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.verts))
	for i, v := range m.verts {
		out[i] = v
	}
	return out
}

func (m *ArenaMesh) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	for i, e := range m.edges {
		out[i] = e
	}
	return out
}

func (m *ArenaMesh) Faces() []Face {
	out := make([]Face, len(m.faces))
	for i, f := range m.faces {
		out[i] = f
	}
	return out
}

// Area returns the signed polygon area of f via the shoelace formula.
func (m *ArenaMesh) Area(f Face) float64 {
	loop := f.Circulator()
	sum := 0.0
	for _, he := range loop {
		a, b := he.From().Pos(), he.To().Pos()
		sum += a.Cross(b)
	}
	return 0.5 * sum
}

// Perimeter returns the sum of the lengths of f's bounding edges.
func (m *ArenaMesh) Perimeter(f Face) float64 {
	loop := f.Circulator()
	sum := 0.0
	for _, he := range loop {
		sum += he.To().Pos().Sub(he.From().Pos()).Len()
	}
	return sum
}

// Length returns the Euclidean length of e, measured along either of its
// two half-edges (they span the same pair of endpoints).
func (m *ArenaMesh) Length(e Edge) float64 {
	he := e.HalfEdge()
	return he.To().Pos().Sub(he.From().Pos()).Len()
}
