// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package cost

// CostFunction is a deterministic integer formula over a builtin's argument
// sizes (spec §4.3). Args holds the sizes of however many arguments the
// builtin takes (1, 2, 3, or 6); shapes that don't use an argument ignore it.
type CostFunction interface {
	Cost(args []int64) int64
}

// ConstantCost ignores its arguments entirely.
type ConstantCost int64

func (c ConstantCost) Cost(args []int64) int64 { return int64(c) }

// LinearInX costs slope*x + intercept using args[0].
type LinearInX struct{ Intercept, Slope int64 }

func (l LinearInX) Cost(args []int64) int64 { return l.Slope*args[0] + l.Intercept }

// LinearInY costs slope*y + intercept using args[1].
type LinearInY struct{ Intercept, Slope int64 }

func (l LinearInY) Cost(args []int64) int64 { return l.Slope*args[1] + l.Intercept }

// LinearInZ costs slope*z + intercept using args[2].
type LinearInZ struct{ Intercept, Slope int64 }

func (l LinearInZ) Cost(args []int64) int64 { return l.Slope*args[2] + l.Intercept }

// AddedSizes costs slope*(x+y) + intercept.
type AddedSizes struct{ Intercept, Slope int64 }

func (a AddedSizes) Cost(args []int64) int64 { return a.Slope*(args[0]+args[1]) + a.Intercept }

// SubtractedSizes costs slope*max(minimum, x-y) + intercept.
type SubtractedSizes struct{ Intercept, Slope, Minimum int64 }

func (s SubtractedSizes) Cost(args []int64) int64 {
	diff := args[0] - args[1]
	if diff < s.Minimum {
		diff = s.Minimum
	}
	return s.Slope*diff + s.Intercept
}

// MultipliedSizes costs slope*(x*y) + intercept.
type MultipliedSizes struct{ Intercept, Slope int64 }

func (m MultipliedSizes) Cost(args []int64) int64 { return m.Slope*(args[0]*args[1]) + m.Intercept }

// MinSize costs slope*min(x,y) + intercept.
type MinSize struct{ Intercept, Slope int64 }

func (m MinSize) Cost(args []int64) int64 {
	x, y := args[0], args[1]
	if x > y {
		x = y
	}
	return m.Slope*x + m.Intercept
}

// MaxSize costs slope*max(x,y) + intercept.
type MaxSize struct{ Intercept, Slope int64 }

func (m MaxSize) Cost(args []int64) int64 {
	x, y := args[0], args[1]
	if x < y {
		x = y
	}
	return m.Slope*x + m.Intercept
}

// LinearOnDiagonal costs slope*x+intercept when x==y, else the fixed
// off-diagonal constant.
type LinearOnDiagonal struct{ Constant, Intercept, Slope int64 }

func (l LinearOnDiagonal) Cost(args []int64) int64 {
	if args[0] == args[1] {
		return args[0]*l.Slope + l.Intercept
	}
	return l.Constant
}

// QuadraticInY costs coeff0 + coeff1*y + coeff2*y^2.
type QuadraticInY struct{ Coeff0, Coeff1, Coeff2 int64 }

func (q QuadraticInY) Cost(args []int64) int64 {
	y := args[1]
	return q.Coeff0 + q.Coeff1*y + q.Coeff2*y*y
}

// QuadraticInZ costs coeff0 + coeff1*z + coeff2*z^2.
type QuadraticInZ struct{ Coeff0, Coeff1, Coeff2 int64 }

func (q QuadraticInZ) Cost(args []int64) int64 {
	z := args[2]
	return q.Coeff0 + q.Coeff1*z + q.Coeff2*z*z
}

// ConstAboveDiagonalIntoMultipliedSizes (V1/V2 divide-family shape) is the
// fixed constant when x<y, else the MultipliedSizes formula.
type ConstAboveDiagonalIntoMultipliedSizes struct {
	Constant        int64
	Intercept, Slope int64
}

func (c ConstAboveDiagonalIntoMultipliedSizes) Cost(args []int64) int64 {
	x, y := args[0], args[1]
	if x < y {
		return c.Constant
	}
	return c.Slope*(x*y) + c.Intercept
}

// ConstAboveDiagonalIntoQuadraticXAndY (V3 divide-family shape) is the fixed
// constant when x<y, else a full quadratic in x and y floored at Minimum.
type ConstAboveDiagonalIntoQuadraticXAndY struct {
	Constant                                     int64
	Minimum                                       int64
	Coeff00, Coeff01, Coeff02, Coeff10, Coeff11, Coeff20 int64
}

func (c ConstAboveDiagonalIntoQuadraticXAndY) Cost(args []int64) int64 {
	x, y := args[0], args[1]
	if x < y {
		return c.Constant
	}
	v := c.Coeff00 + c.Coeff10*x + c.Coeff01*y + c.Coeff20*x*x + c.Coeff11*x*y + c.Coeff02*y*y
	if v < c.Minimum {
		return c.Minimum
	}
	return v
}

// LiteralInYorLinearInZ costs y verbatim when y!=0, else slope*z+intercept.
type LiteralInYorLinearInZ struct{ Intercept, Slope int64 }

func (l LiteralInYorLinearInZ) Cost(args []int64) int64 {
	y, z := args[1], args[2]
	if y != 0 {
		return y
	}
	return l.Slope*z + l.Intercept
}

// LinearInYAndZ costs y*slope1 + z*slope2 + intercept.
type LinearInYAndZ struct{ Intercept, Slope1, Slope2 int64 }

func (l LinearInYAndZ) Cost(args []int64) int64 {
	return args[1]*l.Slope1 + args[2]*l.Slope2 + l.Intercept
}

// LinearInMaxYZ costs slope*max(y,z) + intercept.
type LinearInMaxYZ struct{ Intercept, Slope int64 }

func (l LinearInMaxYZ) Cost(args []int64) int64 {
	y, z := args[1], args[2]
	if y < z {
		y = z
	}
	return l.Slope*y + l.Intercept
}

// ExpModCost models expModInteger: a base cost over the exponent size y and
// the modulus size z, increased by half when the base size x exceeds z.
type ExpModCost struct{ Coeff00, Coeff11, Coeff12 int64 }

func (e ExpModCost) Cost(args []int64) int64 {
	x, y, z := args[0], args[1], args[2]
	c := e.Coeff00 + e.Coeff11*y*z + e.Coeff12*y*z*z
	if x <= z {
		return c
	}
	return c + c/2
}

// WithInteraction costs c00 + c10*x + c01*y + c11*x*y.
type WithInteraction struct{ C00, C10, C01, C11 int64 }

func (w WithInteraction) Cost(args []int64) int64 {
	x, y := args[0], args[1]
	return w.C00 + w.C10*x + w.C01*y + w.C11*x*y
}

// SixArgConstantCost is the only shape ever seen on a 6-argument builtin
// (chooseData): it ignores all six sizes.
type SixArgConstantCost int64

func (c SixArgConstantCost) Cost(args []int64) int64 { return int64(c) }
