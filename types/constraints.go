package types

import (
	"fmt"
	"strings"
)

// BCFLAG identifies the kind of nodal constraint named in an input file
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_General
	BC_Friction
	BC_GeneralSlope
	BC_FrictionSlope
)

var BCNameMap = map[string]BCFLAG{
	"general":       BC_General,
	"fixed":         BC_General,
	"friction":      BC_Friction,
	"frictional":    BC_Friction,
	"generalslope":  BC_GeneralSlope,
	"slope":         BC_GeneralSlope,
	"frictionslope": BC_FrictionSlope,
}

func (bc BCFLAG) String() string {
	switch bc {
	case BC_General:
		return "General"
	case BC_Friction:
		return "Friction"
	case BC_GeneralSlope:
		return "GeneralSlope"
	case BC_FrictionSlope:
		return "FrictionSlope"
	default:
		return "None"
	}
}

// IsSloped reports whether the constraint is stored by angle rather than by axis
func (bc BCFLAG) IsSloped() bool {
	return bc == BC_GeneralSlope || bc == BC_FrictionSlope
}

// IsFrictional reports whether the constraint carries a sign and a Coulomb limit
func (bc BCFLAG) IsFrictional() bool {
	return bc == BC_Friction || bc == BC_FrictionSlope
}

/*
BCTAG is a constraint token of the form "<Kind>[-<Label>]", for example "General-1" or
"FrictionSlope-left". The kind is matched case insensitively against BCNameMap.
*/
type BCTAG string

func NewBCTAG(token string) BCTAG {
	return BCTAG(strings.TrimSpace(token))
}

func (bt BCTAG) GetFLAG() (flag BCFLAG) {
	var (
		kind = strings.ToLower(strings.SplitN(string(bt), "-", 2)[0])
		ok   bool
	)
	if flag, ok = BCNameMap[kind]; !ok {
		return BC_None
	}
	return
}

func (bt BCTAG) GetLabel() (label string) {
	splits := strings.SplitN(string(bt), "-", 2)
	if len(splits) == 2 {
		label = splits[1]
	}
	return
}

// Validate returns an error when the token names no known constraint kind
func (bt BCTAG) Validate() error {
	if bt.GetFLAG() == BC_None {
		return fmt.Errorf("unknown constraint kind in %q", string(bt))
	}
	return nil
}
