// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vmforces is a small demo of the force-compute engine: it builds a
// single square cell, wires up area, perimeter and a uniform electric-field
// force, runs one compute, and prints the resultant per-vertex forces.
// Mesh/JSON ingest and time-stepping live outside this package, so there is
// no .sim file to load: the mesh here is built in code.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/frenebo/VMTutorial-pjk/force"
	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
	"github.com/frenebo/VMTutorial-pjk/vm"
)

func main() {
	verbose := true

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
	}()
	mpi.Start(false)
	defer mpi.Stop(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nvmforces -- vertex-model force engine demo\n\n")
	}

	m := mesh.NewPolygonMesh(
		[]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[][]int{{0, 1, 2, 3}},
	)

	sim := vm.New(m)
	if err := sim.AddForce("area", force.TypeArea, verbose); err != nil {
		chk.Panic("%v", err)
	}
	if err := sim.AddForce("perimeter", force.TypePerimeter, verbose); err != nil {
		chk.Panic("%v", err)
	}
	if err := sim.AddForce("efield", force.TypeEFieldUniform, verbose); err != nil {
		chk.Panic("%v", err)
	}

	if err := sim.SetGlobalParams("area", map[string]float64{"A0": 0.8, "kappa": 1.0}, nil, nil, nil, verbose); err != nil {
		chk.Panic("%v", err)
	}
	if err := sim.SetGlobalParams("perimeter", map[string]float64{"P0": 3.6, "gamma": 0.5}, nil, nil, nil, verbose); err != nil {
		chk.Panic("%v", err)
	}
	if err := sim.SetGlobalParams("efield", map[string]float64{"E_x": 1.0, "E_y": 0.0}, nil, nil, nil, verbose); err != nil {
		chk.Panic("%v", err)
	}
	if err := sim.SetFaceParamsFacewise("efield", []int{0}, []map[string]float64{{"charge": 2.0}}, verbose); err != nil {
		chk.Panic("%v", err)
	}

	sim.StartForceComputeTimers(verbose)
	forces, err := sim.GetResultantForces(verbose)
	if err != nil {
		chk.Panic("%v", err)
	}

	if mpi.Rank() == 0 {
		// pts[v] = (fx, fy), the same two-column table shape gofem's own
		// diagnostics build (e.g. e_beam.go's utl.DblsAlloc(nstations, 2))
		// before formatting or plotting it.
		pts := utl.DblsAlloc(len(forces), 2)
		for vid, f := range forces {
			pts[vid][0], pts[vid][1] = f.X, f.Y
			io.Pf("vertex %d: force = (%g, %g)\n", vid, pts[vid][0], pts[vid][1])
		}
		for id, ms := range sim.GetForceComputeTimersMillis(verbose) {
			io.Pf("force %s: %g ms\n", id, ms)
		}
	}
}
