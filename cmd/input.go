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
	"os"

	"github.com/notargets/gompm/InputParameters"
)

const exampleFile = `
########################################
Title: "Bingham column"
Material:
  Model: bingham   # or newtonian
  E: 1.e6
  Nu: 0.3
  Density: 1800
  Tau0: 10
  Mu: 1.0
Dt: 1.e-3
Miu: 0.05
Steps: 10
VelocityGradient: [0, 2, 0, 0, 0, 0, 0, 0, 0]
Node:
  Coord: [0, 0]
  Mass: 1
  Momentum: [1, 0]
  ExternalForce: [0, -10]
BCs:
  Friction-bottom:
    Direction: 1
    Sign: -1
########################################
`

func readInput(icFile string) (ip *InputParameters.InputParametersMPM, err error) {
	var data []byte
	if len(icFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	ip = InputParameters.NewInputParametersMPM()
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", icFile, err)
	}
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", icFile, err)
	}
	return
}
