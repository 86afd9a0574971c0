package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quantica-dev/hexband/lattice"
)

var (
	flagT1     float64
	flagT2     float64
	flagOnsite float64
	flagSOC    float64
	flagExx    float64
	flagEyy    float64
	flagExy    float64
	flagMode   string
	flagParams string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagT1, "t1", lattice.DefaultT1, "NN hopping t1, eV")
	pf.Float64Var(&flagT2, "t2", lattice.DefaultT2, "NNN hopping t2, eV")
	pf.Float64Var(&flagOnsite, "onsite", 0, "onsite energy, eV")
	pf.Float64Var(&flagSOC, "soc", 0, "spin-orbit coupling strength, eV")
	pf.Float64Var(&flagExx, "exx", 0, "strain component exx")
	pf.Float64Var(&flagEyy, "eyy", 0, "strain component eyy")
	pf.Float64Var(&flagExy, "exy", 0, "strain component exy")
	pf.StringVar(&flagMode, "mode", "nnn", "coupling mode: nn or nnn")
	pf.StringVar(&flagParams, "params", "", "YAML parameter file")
}

// paramsFileSchema mirrors lattice.Parameters for YAML decoding.
type paramsFileSchema struct {
	T1     float64 `yaml:"t1"`
	T2     float64 `yaml:"t2"`
	Onsite float64 `yaml:"onsite"`
	SOC    float64 `yaml:"soc"`
	Strain struct {
		Exx float64 `yaml:"exx"`
		Eyy float64 `yaml:"eyy"`
		Exy float64 `yaml:"exy"`
	} `yaml:"strain"`
}

// loadParameters resolves the effective parameter set: defaults, then the
// YAML file if given, then any explicitly set flags on top. The result is
// validated here so every subcommand fails fast with the same message.
func loadParameters(cmd *cobra.Command) (lattice.Parameters, lattice.Mode, error) {
	p := lattice.Parameters{
		T1:     flagT1,
		T2:     flagT2,
		Onsite: flagOnsite,
		SOC:    flagSOC,
		Strain: lattice.StrainTensor{Exx: flagExx, Eyy: flagEyy, Exy: flagExy},
	}

	if flagParams != "" {
		raw, err := os.ReadFile(flagParams)
		if err != nil {
			return p, 0, fmt.Errorf("read params file: %w", err)
		}
		var f paramsFileSchema
		f.T1, f.T2 = lattice.DefaultT1, lattice.DefaultT2
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return p, 0, fmt.Errorf("parse params file: %w", err)
		}

		fromFile := lattice.Parameters{
			T1:     f.T1,
			T2:     f.T2,
			Onsite: f.Onsite,
			SOC:    f.SOC,
			Strain: lattice.StrainTensor{Exx: f.Strain.Exx, Eyy: f.Strain.Eyy, Exy: f.Strain.Exy},
		}
		// explicit flags override the file
		flags := cmd.Flags()
		if !flags.Changed("t1") {
			p.T1 = fromFile.T1
		}
		if !flags.Changed("t2") {
			p.T2 = fromFile.T2
		}
		if !flags.Changed("onsite") {
			p.Onsite = fromFile.Onsite
		}
		if !flags.Changed("soc") {
			p.SOC = fromFile.SOC
		}
		if !flags.Changed("exx") {
			p.Strain.Exx = fromFile.Strain.Exx
		}
		if !flags.Changed("eyy") {
			p.Strain.Eyy = fromFile.Strain.Eyy
		}
		if !flags.Changed("exy") {
			p.Strain.Exy = fromFile.Strain.Exy
		}
	}

	var mode lattice.Mode
	switch flagMode {
	case "nn":
		mode = lattice.NNOnly
	case "nnn":
		mode = lattice.NNPlusNNN
	default:
		return p, 0, fmt.Errorf("unknown mode %q (want nn or nnn)", flagMode)
	}

	if err := p.Validate(); err != nil {
		return p, 0, err
	}

	return p, mode, nil
}
