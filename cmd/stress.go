/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gompm/InputParameters"
	"github.com/notargets/gompm/material"
	"github.com/notargets/gompm/utils"
)

// StressCmd represents the stress command
var StressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Single material point stress path under a constant velocity gradient",
	Long: `
Integrates the constitutive model of the input file at one material point, holding the
velocity gradient fixed and applying the strain increment sym(L) dt every step,

gompm stress -I input.yaml -n 100 --3d`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip     *InputParameters.InputParametersMPM
			icFile string
		)
		fmt.Println("stress called")
		if icFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		if ip, err = readInput(icFile); err != nil {
			return
		}
		if steps := viper.GetInt("steps"); steps > 0 {
			ip.Steps = steps
		}
		threeD, _ := cmd.Flags().GetBool("3d")
		if viper.GetBool("verbose") {
			ip.Print()
		}
		sp, err := RunStress(ip, threeD)
		if err != nil {
			return
		}
		sp.Print()
		return
	},
}

func init() {
	rootCmd.AddCommand(StressCmd)
	StressCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Material\n\t- Dt\n\t- VelocityGradient")
	StressCmd.Flags().IntP("steps", "n", 0, "number of increments, overrides Steps in the input file")
	StressCmd.Flags().Bool("3d", false, "use the full 3D velocity gradient")
	_ = viper.BindPFlag("steps", StressCmd.Flags().Lookup("steps"))
}

// StressPath is the history of a single material point
type StressPath struct {
	Pressure   []float64
	StrainRate []float64
	Stress     [][]float64 // Voigt: xx, yy, zz, xy, yz, xz
}

func (sp *StressPath) Print() {
	fmt.Printf("%6s %14s %14s %s\n", "step", "pressure", "strain rate", "stress [xx yy zz xy yz xz]")
	for i := range sp.Stress {
		fmt.Printf("%6d %14.6g %14.6g %v\n", i+1, sp.Pressure[i], sp.StrainRate[i], sp.Stress[i])
	}
}

// RunStress integrates the material model from a stress free state
func RunStress(ip *InputParameters.InputParametersMPM, threeD bool) (sp *StressPath, err error) {
	var (
		model  material.Model
		pNew   float64
		pts    = material.Points{0: material.NewMaterialPoint(ip.VelocityGradient)}
		stress = mat.NewVecDense(material.NSIG, nil)
	)
	if model, err = ip.NewModel(); err != nil {
		return
	}
	dstrain := StrainIncrement(pts[0].VelGrad, ip.Dt)
	sp = &StressPath{}
	for step := 0; step < ip.Steps; step++ {
		if threeD {
			pNew, err = model.ComputeStress3D(dstrain, stress, pts, 0)
		} else {
			pNew, err = model.ComputeStress(dstrain, stress, pts, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step+1, err)
		}
		if utils.VecIsNan(stress) {
			return nil, fmt.Errorf("step %d: NaN stress", step+1)
		}
		sp.Pressure = append(sp.Pressure, pNew)
		sp.StrainRate = append(sp.StrainRate, pts[0].StrainRate)
		sp.Stress = append(sp.Stress, utils.VecGetF64(stress))
	}
	return
}

// StrainIncrement returns the Voigt strain increment of velocity gradient L over dt, with engineering shear strains
func StrainIncrement(L mat.Matrix, dt float64) *mat.VecDense {
	return mat.NewVecDense(material.NSIG, []float64{
		L.At(0, 0) * dt,
		L.At(1, 1) * dt,
		L.At(2, 2) * dt,
		(L.At(0, 1) + L.At(1, 0)) * dt,
		(L.At(1, 2) + L.At(2, 1)) * dt,
		(L.At(0, 2) + L.At(2, 0)) * dt,
	})
}
