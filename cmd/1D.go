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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gomg/InputParameters"
	"github.com/notargets/gomg/MG1D"
	"github.com/notargets/gomg/model_problems/Poisson1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Poisson Boundary Value Problem",
	Long: `
Executes the full multigrid relaxation solver for the 1D Dirichlet
Poisson model problem,

gomg 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		fmt.Println("1D called")
		m1d.N, _ = cmd.Flags().GetInt("n")
		m1d.BCLeft, _ = cmd.Flags().GetFloat64("left")
		m1d.BCRight, _ = cmd.Flags().GetFloat64("right")
		m1d.Sweeps, _ = cmd.Flags().GetInt("sweeps")
		m1d.Ascents, _ = cmd.Flags().GetInt("ascents")
		m1d.Omega, _ = cmd.Flags().GetFloat64("omega")
		m1d.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		dly, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dly)
		m1d.InputFile, _ = cmd.Flags().GetString("input")
		m1d.CSVFile, _ = cmd.Flags().GetString("csvFile")
		m1d.Title, _ = cmd.Flags().GetString("title")
		if prof, _ := cmd.Flags().GetBool("cpuProfile"); prof {
			defer profile.Start().Stop()
		}
		Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	sp := MG1D.DefaultSettings()
	OneDCmd.Flags().IntP("n", "n", 16, "number of grid intervals, must be a power of two")
	OneDCmd.Flags().Float64("left", 1, "Dirichlet boundary value at x=0")
	OneDCmd.Flags().Float64("right", 0, "Dirichlet boundary value at x=1")
	OneDCmd.Flags().Int("sweeps", sp.SweepsPerSmooth, "Jacobi sweeps per smoothing call")
	OneDCmd.Flags().Int("ascents", sp.FMGAscents, "V-cycles applied per level on the FMG ascent")
	OneDCmd.Flags().Float64("omega", sp.DampingWeight, "Jacobi damping weight")
	OneDCmd.Flags().Float64("tolerance", 0, "optional residual stopping tolerance, 0 keeps the fixed cycle count")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph of the solution")
	OneDCmd.Flags().StringP("input", "i", "", "YAML input parameter file, its values override the flags")
	OneDCmd.Flags().String("csvFile", "", "append a convergence study record to this file")
	OneDCmd.Flags().String("title", "poisson", "title used for convergence study records")
	OneDCmd.Flags().Bool("cpuProfile", false, "write a CPU profile of the solve")
}

type Model1D struct {
	N                int
	BCLeft, BCRight  float64
	Sweeps, Ascents  int
	Omega, Tolerance float64
	Graph            bool
	Delay            time.Duration
	InputFile        string
	CSVFile          string
	Title            string
}

func Run1D(m1d *Model1D) {
	sp := MG1D.DefaultSettings()
	if len(m1d.InputFile) != 0 {
		data, err := os.ReadFile(m1d.InputFile)
		if err != nil {
			fmt.Printf("unable to read input file: %v\n", err)
			os.Exit(1)
		}
		ip := &InputParameters.InputParameters1D{}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("unable to parse input file: %v\n", err)
			os.Exit(1)
		}
		ip.Print()
		applyInputParameters(m1d, sp, ip)
	}
	sp.SweepsPerSmooth = m1d.Sweeps
	sp.FMGAscents = m1d.Ascents
	sp.DampingWeight = m1d.Omega
	sp.Tolerance = m1d.Tolerance

	c, err := Poisson1D.NewPoisson(m1d.N, m1d.BCLeft, m1d.BCRight, sp)
	if err != nil {
		fmt.Printf("unable to set up model problem: %v\n", err)
		os.Exit(1)
	}
	c.Run(m1d.Graph, m1d.Delay*time.Millisecond)

	if len(m1d.CSVFile) != 0 {
		f, err := os.OpenFile(m1d.CSVFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Printf("unable to open csv file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err = c.WriteCSV(f, m1d.Title); err != nil {
			fmt.Printf("unable to write csv record: %v\n", err)
			os.Exit(1)
		}
	}
}

// applyInputParameters seeds the model from the YAML file, leaving zero
// values to the flag defaults.
func applyInputParameters(m1d *Model1D, sp *MG1D.Settings, ip *InputParameters.InputParameters1D) {
	if ip.NIntervals != 0 {
		m1d.N = ip.NIntervals
	}
	m1d.BCLeft = ip.BCLeft
	m1d.BCRight = ip.BCRight
	if ip.DampingWeight != 0 {
		m1d.Omega = ip.DampingWeight
	}
	if ip.SweepsPerSmooth != 0 {
		m1d.Sweeps = ip.SweepsPerSmooth
	}
	if ip.FMGAscents != 0 {
		m1d.Ascents = ip.FMGAscents
	}
	if ip.Tolerance != 0 {
		m1d.Tolerance = ip.Tolerance
	}
	if ip.MaxExtraCycles != 0 {
		sp.MaxExtraCycles = ip.MaxExtraCycles
	}
	if ip.Graph {
		m1d.Graph = true
	}
}
