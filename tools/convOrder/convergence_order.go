package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		fmt.Printf("Title = %s\n", cs.title)
		for i := range cs.numPTS {
			fmt.Printf("%d, %v, %v\n", cs.numPTS[i], cs.maxErr[i], cs.rmsErr[i])
		}
		maxOrder, rmsOrder := cs.Orders()
		for i := range maxOrder {
			fmt.Printf("%d -> %d: order(max) = %5.2f, order(rms) = %5.2f\n",
				cs.numPTS[i], cs.numPTS[i+1], maxOrder[i], rmsOrder[i])
		}
	}
}

type ConvergenceStudy struct {
	title          string
	numPTS         []int
	maxErr, rmsErr []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, maxErr, rmsErr float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.maxErr = append(cs.maxErr, maxErr)
	cs.rmsErr = append(cs.rmsErr, rmsErr)
}

// Orders computes the observed order of accuracy between each successive
// pair of grid refinements in the study.
func (cs *ConvergenceStudy) Orders() (maxOrder, rmsOrder []float64) {
	for i := 1; i < len(cs.numPTS); i++ {
		ratio := float64(cs.numPTS[i]) / float64(cs.numPTS[i-1])
		maxOrder = append(maxOrder, math.Log(cs.maxErr[i-1]/cs.maxErr[i])/math.Log(ratio))
		rmsOrder = append(rmsOrder, math.Log(cs.rmsErr[i-1]/cs.rmsErr[i])/math.Log(ratio))
	}
	return
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records        [][]string
		err            error
		f              *os.File
		ok             bool
		cs             *ConvergenceStudy
		maxErr, rmsErr float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for _, rec := range records {
		title, nptstxt := rec[0], rec[1]
		npts, _ := strconv.Atoi(nptstxt)
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		_, _ = fmt.Sscanf(rec[2], "%f", &maxErr)
		_, _ = fmt.Sscanf(rec[3], "%f", &rmsErr)
		cs.Add(npts, maxErr, rmsErr)
	}
	return
}
