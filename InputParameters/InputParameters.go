package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title           string  `yaml:"Title"`
	NIntervals      int     `yaml:"NIntervals"`
	BCLeft          float64 `yaml:"BCLeft"`
	BCRight         float64 `yaml:"BCRight"`
	DampingWeight   float64 `yaml:"DampingWeight"`
	SweepsPerSmooth int     `yaml:"SweepsPerSmooth"`
	FMGAscents      int     `yaml:"FMGAscents"`
	Tolerance       float64 `yaml:"Tolerance"`
	MaxExtraCycles  int     `yaml:"MaxExtraCycles"`
	Graph           bool    `yaml:"Graph"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= NIntervals\n", ip.NIntervals)
	fmt.Printf("%8.5f\t\t= BCLeft\n", ip.BCLeft)
	fmt.Printf("%8.5f\t\t= BCRight\n", ip.BCRight)
	fmt.Printf("%8.5f\t\t= DampingWeight\n", ip.DampingWeight)
	fmt.Printf("[%d]\t\t\t= SweepsPerSmooth\n", ip.SweepsPerSmooth)
	fmt.Printf("[%d]\t\t\t= FMGAscents\n", ip.FMGAscents)
	fmt.Printf("%8.1e\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t= MaxExtraCycles\n", ip.MaxExtraCycles)
}
