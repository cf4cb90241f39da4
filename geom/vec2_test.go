package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec01(tst *testing.T) {
	chk.PrintTitle("vec01: basic Vec2 arithmetic")

	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	chk.Scalar(tst, "(a+b).x", 1e-17, a.Add(b).X, 4)
	chk.Scalar(tst, "(a+b).y", 1e-17, a.Add(b).Y, 1)
	chk.Scalar(tst, "(a-b).x", 1e-17, a.Sub(b).X, -2)
	chk.Scalar(tst, "a.b", 1e-17, a.Dot(b), 1)
	chk.Scalar(tst, "|({3,4})|", 1e-15, Vec2{X: 3, Y: 4}.Len(), 5)
	chk.Scalar(tst, "a x b", 1e-17, a.Cross(b), -7)
}

func Test_vec02(tst *testing.T) {
	chk.PrintTitle("vec02: Unit and ZeroVecs/SumVecs")

	u := Vec2{X: 3, Y: 4}.Unit()
	chk.Scalar(tst, "|unit|", 1e-14, u.Len(), 1)

	z := Vec2{}.Unit()
	chk.Scalar(tst, "|unit(0)|", 1e-17, z.Len(), 0)

	zs := ZeroVecs(3)
	if len(zs) != 3 {
		tst.Fatalf("ZeroVecs should return 3 entries, got %d", len(zs))
	}
	for _, v := range zs {
		if v.X != 0 || v.Y != 0 {
			tst.Fatalf("ZeroVecs entries must be zero")
		}
	}

	dst := []Vec2{{X: 1, Y: 1}, {X: 0, Y: 0}}
	src := []Vec2{{X: 2, Y: 3}, {X: -1, Y: 5}}
	SumVecs(dst, src)
	chk.Scalar(tst, "dst[0].x", 1e-17, dst[0].X, 3)
	chk.Scalar(tst, "dst[0].y", 1e-17, dst[0].Y, 4)
	chk.Scalar(tst, "dst[1].x", 1e-17, dst[1].X, -1)
	chk.Scalar(tst, "dst[1].y", 1e-17, dst[1].Y, 5)
}
