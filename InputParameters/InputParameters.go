package InputParameters

import (
	"fmt"
	"math"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gompm/material"
	"github.com/notargets/gompm/mpm"
	"github.com/notargets/gompm/types"
	"github.com/notargets/gompm/utils"
)

// MaterialInput names the constitutive model and carries its parameters
type MaterialInput struct {
	Model string `json:"Model"`
	material.Params
}

// NodeInput describes a single node and the contributions projected onto it
type NodeInput struct {
	Coord         []float64 `json:"Coord"`
	Dof           int       `json:"Dof"`
	Mass          float64   `json:"Mass"`
	Momentum      []float64 `json:"Momentum"`
	ExternalForce []float64 `json:"ExternalForce"`
	PressureForce []float64 `json:"PressureForce"`
	InternalForce []float64 `json:"InternalForce"`
}

// Parameters obtained from the YAML input file
type InputParametersMPM struct {
	Title            string        `json:"Title"`
	Material         MaterialInput `json:"Material"`
	Dt               float64       `json:"Dt"`
	Miu              float64       `json:"Miu"` // local damping and boundary friction coefficient
	Steps            int           `json:"Steps"`
	MixedMesh        bool          `json:"MixedMesh"`
	VelocityGradient []float64     `json:"VelocityGradient"` // 3x3, row major
	Node             NodeInput     `json:"Node"`
	// First key is a constraint tag like "Friction-bottom", second is the parameter name:
	// Direction, Sign, or Angle in degrees for the sloped kinds
	BCs map[string]map[string]float64 `json:"BCs"`
}

func NewInputParametersMPM() *InputParametersMPM {
	return &InputParametersMPM{
		Title:    "unnamed",
		Material: MaterialInput{Model: "bingham"},
		Dt:       1.e-3,
		Steps:    1,
	}
}

func (ip *InputParametersMPM) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks the integration settings and the array sizes; material parameters are checked by the model
func (ip *InputParametersMPM) Validate() error {
	if !(ip.Dt > 0) || math.IsInf(ip.Dt, 0) {
		return fmt.Errorf("Dt must be positive, have %v", ip.Dt)
	}
	if !(ip.Miu >= 0 && ip.Miu <= 1) {
		return fmt.Errorf("Miu must lie in [0, 1], have %v", ip.Miu)
	}
	if ip.Steps < 1 {
		return fmt.Errorf("Steps must be at least 1, have %d", ip.Steps)
	}
	if l := len(ip.VelocityGradient); l != 0 && l != 9 {
		return fmt.Errorf("VelocityGradient needs 9 entries in row major order, have %d", l)
	}
	for _, key := range ip.bcKeys() {
		bt := types.NewBCTAG(key)
		if err := bt.Validate(); err != nil {
			return err
		}
		required := []string{"Direction"}
		if bt.GetFLAG().IsSloped() {
			required = []string{"Angle"}
		}
		if bt.GetFLAG().IsFrictional() {
			required = append(required, "Sign")
		}
		for _, name := range required {
			val, ok := ip.BCs[key][name]
			if !ok {
				return fmt.Errorf("BCs[%s] needs %s", key, name)
			}
			if name != "Angle" && val != math.Trunc(val) {
				return fmt.Errorf("BCs[%s].%s must be an integer, have %v", key, name, val)
			}
		}
	}
	return nil
}

// NewModel allocates the material model named in the input
func (ip *InputParametersMPM) NewModel() (material.Model, error) {
	return material.New(ip.Material.Model, ip.Material.Params)
}

// NewNode builds the node described in the input, with its constraints stored and contributions assigned
func (ip *InputParametersMPM) NewNode() (n *mpm.Node, err error) {
	ni := ip.Node
	dof := ni.Dof
	if dof == 0 {
		dof = len(ni.Coord)
	}
	if n, err = mpm.NewNode(0, ni.Coord, dof); err != nil {
		return
	}
	for name, x := range map[string][]float64{
		"Momentum": ni.Momentum, "ExternalForce": ni.ExternalForce,
		"PressureForce": ni.PressureForce, "InternalForce": ni.InternalForce,
	} {
		if len(x) != 0 && len(x) != dof {
			return nil, fmt.Errorf("Node.%s needs %d entries, have %d", name, dof, len(x))
		}
	}
	if err = ip.StoreConstraints(n); err != nil {
		return nil, err
	}
	n.AssignSoilMass(ni.Mass)
	if len(ni.Momentum) != 0 {
		n.AssignSoilMomentum(utils.NewVecFrom(dof, ni.Momentum))
	}
	if len(ni.ExternalForce) != 0 {
		n.AssignExternalForce(utils.NewVecFrom(dof, ni.ExternalForce))
	}
	if len(ni.PressureForce) != 0 {
		n.AssignPressureForce(utils.NewVecFrom(dof, ni.PressureForce))
	}
	if len(ni.InternalForce) != 0 {
		n.AssignInternalForce(utils.NewVecFrom(dof, ni.InternalForce))
	}
	return
}

// StoreConstraints stores the BCs on n in sorted tag order
func (ip *InputParametersMPM) StoreConstraints(n *mpm.Node) (err error) {
	defer func() {
		// the node panics on an out of range direction or sign
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid constraint: %v", r)
		}
	}()
	for _, key := range ip.bcKeys() {
		var (
			bt   = types.NewBCTAG(key)
			prms = ip.BCs[key]
		)
		switch bt.GetFLAG() {
		case types.BC_General:
			n.StoreGeneralConstraint(int(prms["Direction"]))
		case types.BC_Friction:
			n.StoreFrictionConstraint(int(prms["Direction"]), int(prms["Sign"]))
		case types.BC_GeneralSlope:
			n.StoreGeneralConstraintSlopeBn(prms["Angle"] * math.Pi / 180)
		case types.BC_FrictionSlope:
			n.StoreFrictionConstraintSlopeBn(prms["Angle"]*math.Pi/180, int(prms["Sign"]))
		default:
			return bt.Validate()
		}
	}
	return
}

func (ip *InputParametersMPM) bcKeys() (keys []string) {
	keys = make([]string, 0, len(ip.BCs))
	for k := range ip.BCs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func (ip *InputParametersMPM) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Material Model\n", ip.Material.Model)
	fmt.Printf("%+v\t= Material Parameters\n", ip.Material.Params)
	fmt.Printf("%8.5g\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5g\t\t= Miu\n", ip.Miu)
	fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%v]\t\t\t= Mixed Mesh\n", ip.MixedMesh)
	for _, key := range ip.bcKeys() {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
