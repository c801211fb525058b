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

	"github.com/notargets/gompm/InputParameters"
	"github.com/notargets/gompm/mpm"
	"github.com/notargets/gompm/utils"
)

// NodeCmd represents the node command
var NodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Nodal acceleration and velocity for one node with its boundary constraints",
	Long: `
Builds the node described in the input file, stores its constraints, assigns the given mass,
momentum and forces, and derives the constrained acceleration and velocity over one step,

gompm node -I input.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip     *InputParameters.InputParametersMPM
			icFile string
			n      *mpm.Node
		)
		fmt.Println("node called")
		if icFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		if ip, err = readInput(icFile); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ip.Print()
		}
		if n, err = RunNode(ip); err != nil {
			return
		}
		fmt.Println(n)
		fmt.Printf("acceleration = %v\n", utils.VecGetF64(n.SoilAcceleration()))
		fmt.Printf("velocity     = %v\n", utils.VecGetF64(n.SoilVelocity()))
		return
	},
}

func init() {
	rootCmd.AddCommand(NodeCmd)
	NodeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the Node and BCs blocks")
}

// RunNode derives the kinematics of the input node over one time step
func RunNode(ip *InputParameters.InputParametersMPM) (n *mpm.Node, err error) {
	if n, err = ip.NewNode(); err != nil {
		return
	}
	if ip.MixedMesh {
		n.ComputeSoilAccelerationAndVelocityMixedMesh(ip.Dt, ip.Miu)
	} else {
		n.ComputeSoilAccelerationAndVelocity(ip.Dt, ip.Miu)
	}
	return
}
