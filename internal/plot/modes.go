package plot

import (
	"fmt"
	"strings"
)

// Var names one of the three coordinate variables.
type Var uint8

const (
	VarX Var = iota
	VarY
	VarZ
)

func (v Var) String() string {
	switch v {
	case VarX:
		return "x"
	case VarY:
		return "y"
	default:
		return "z"
	}
}

// AxisIndex returns the position of the variable's axis in the conventional
// (x, y, z) ordering.
func (v Var) AxisIndex() int { return int(v) }

// Scope tags which dependency slot of a plot an axis range exchange refers
// to. Most modes use ScopeBoth; the parametric mode splits its output per
// coordinate.
type Scope string

const (
	ScopeBoth Scope = "both"
	ScopeSX   Scope = "sx"
	ScopeSY   Scope = "sy"
	ScopeSZ   Scope = "sz"
)

// Mode selects how the plot's expressions are sampled.
type Mode uint8

const (
	ModeXOfYZ Mode = iota // x=fn(y,z)
	ModeYOfXZ             // y=fn(x,z)
	ModeZOfXY             // z=fn(x,y)
	ModeParametric        // x,y,z=fns(t)
	ModeXYOfZ             // x,y=fns(z)
	ModeYZOfX             // y,z=fns(x)
	ModeXZOfY             // x,z=fns(y)
)

var modeNames = map[Mode]string{
	ModeXOfYZ:      "x=fn(y,z)",
	ModeYOfXZ:      "y=fn(x,z)",
	ModeZOfXY:      "z=fn(x,y)",
	ModeParametric: "x,y,z=fns(t)",
	ModeXYOfZ:      "x,y=fns(z)",
	ModeYZOfX:      "y,z=fns(x)",
	ModeXZOfY:      "x,z=fns(y)",
}

func (m Mode) String() string { return modeNames[m] }

// IsSurface reports whether the mode samples a height grid.
func (m Mode) IsSurface() bool {
	return m == ModeXOfYZ || m == ModeYOfXZ || m == ModeZOfXY
}

// IsLine reports whether the mode produces a polyline.
func (m Mode) IsLine() bool { return !m.IsSurface() }

// ModeStrings returns the accepted mode spellings in canonical order.
func ModeStrings() []string {
	return []string{
		"x=fn(y,z)", "y=fn(x,z)", "z=fn(x,y)",
		"x,y,z=fns(t)",
		"x,y=fns(z)", "y,z=fns(x)", "x,z=fns(y)",
	}
}

// ParseMode maps a mode spelling to its Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown plot mode %q (expected one of: %s)", s, strings.Join(ModeStrings(), ", "))
}

// axisScope pairs an axis role with the dependency scope of the exchange.
type axisScope struct {
	role  Var
	scope Scope
}

// modeAffects lists, per mode, the axes whose ranges the plot contributes
// to, and under which scope the contribution is requested.
var modeAffects = map[Mode][]axisScope{
	ModeZOfXY:      {{VarZ, ScopeBoth}},
	ModeXOfYZ:      {{VarX, ScopeBoth}},
	ModeYOfXZ:      {{VarY, ScopeBoth}},
	ModeParametric: {{VarX, ScopeSX}, {VarY, ScopeSY}, {VarZ, ScopeSZ}},
	ModeXYOfZ:      {{VarX, ScopeBoth}, {VarY, ScopeBoth}},
	ModeYZOfX:      {{VarY, ScopeBoth}, {VarZ, ScopeBoth}},
	ModeXZOfY:      {{VarX, ScopeBoth}, {VarZ, ScopeBoth}},
}

// modeRequires lists, per mode, the axes whose plotted ranges must be known
// before the plot can be sampled.
var modeRequires = map[Mode][]axisScope{
	ModeZOfXY:      {{VarX, ScopeBoth}, {VarY, ScopeBoth}},
	ModeXOfYZ:      {{VarY, ScopeBoth}, {VarZ, ScopeBoth}},
	ModeYOfXZ:      {{VarX, ScopeBoth}, {VarZ, ScopeBoth}},
	ModeParametric: {},
	ModeXYOfZ:      {{VarZ, ScopeBoth}},
	ModeYZOfX:      {{VarX, ScopeBoth}},
	ModeXZOfY:      {{VarY, ScopeBoth}},
}

// modeVars gives the variable roles of the dependent line modes as
// (dependent1, dependent2, independent).
var modeVars = map[Mode][3]Var{
	ModeXYOfZ: {VarX, VarY, VarZ},
	ModeYZOfX: {VarY, VarZ, VarX},
	ModeXZOfY: {VarX, VarZ, VarY},
}

// gridRoles gives the variable roles of a surface mode: the dependent height
// variable and the two grid variables in (pos1, pos2) order.
type gridRoles struct {
	dep Var
	o1  Var
	o2  Var
}

var modeGrid = map[Mode]gridRoles{
	ModeXOfYZ: {dep: VarX, o1: VarY, o2: VarZ},
	ModeYOfXZ: {dep: VarY, o1: VarZ, o2: VarX},
	ModeZOfXY: {dep: VarZ, o1: VarX, o2: VarY},
}
