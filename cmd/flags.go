package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gobarrel/internal/cylinder"
	"github.com/alexiusacademia/gobarrel/internal/domain"
	"github.com/alexiusacademia/gobarrel/internal/refdata"
)

// cylinderFlags are the geometry, load and material flags of the
// single-cylinder commands.
type cylinderFlags struct {
	ri, ro     float64 // mm
	pressure   float64 // MPa
	external   float64 // MPa
	sy, su     float64 // MPa
	material   string
	cartridge  string
	closedEnds bool
}

func (f *cylinderFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.ri, "ri", 0, "Bore (inner) radius in mm")
	fs.Float64Var(&f.ro, "ro", 0, "Outer radius in mm [required]")
	fs.Float64VarP(&f.pressure, "pressure", "p", 0, "Internal (chamber) pressure in MPa")
	fs.Float64Var(&f.external, "external", 0, "External pressure in MPa")
	fs.Float64Var(&f.sy, "sy", 0, "Yield strength in MPa")
	fs.Float64Var(&f.su, "su", 0, "Ultimate strength in MPa")
	fs.StringVarP(&f.material, "material", "m", "", "Material name from the catalogue (e.g. 4140)")
	fs.StringVarP(&f.cartridge, "cartridge", "c", "", "Cartridge name; sets --ri and --pressure when they are not given")
	fs.BoolVar(&f.closedEnds, "closed-ends", false, "Include the closed-end axial stress")
}

// input resolves the flags against the reference data. The cartridge is nil
// unless --cartridge was given.
func (f *cylinderFlags) input(fs *pflag.FlagSet) (cylinder.Input, *refdata.Cartridge, error) {
	var cart *refdata.Cartridge
	ri, pi := f.ri, f.pressure

	if f.cartridge != "" {
		c, err := repo.Cartridge(f.cartridge)
		if err != nil {
			return cylinder.Input{}, nil, err
		}
		cart = &c
		if !fs.Changed("ri") {
			ri = c.BoreDiameter / 2
		}
		if !fs.Changed("pressure") {
			pi = c.MaxPressure
		}
	}

	m, err := resolveMaterial(fs, f.material, f.sy, f.su)
	if err != nil {
		return cylinder.Input{}, nil, err
	}

	return cylinder.Input{
		Geometry:     domain.Geometry{Ri: ri, Ro: f.ro},
		Load:         domain.Load{Pi: pi, Po: f.external},
		Material:     m,
		EndCondition: endCondition(f.closedEnds),
	}, cart, nil
}

// resolveMaterial starts from the named catalogue material, if any, and
// applies explicit --sy/--su on top.
func resolveMaterial(fs *pflag.FlagSet, name string, sy, su float64) (domain.Material, error) {
	var m domain.Material
	if name != "" {
		rec, err := repo.Material(name)
		if err != nil {
			return m, err
		}
		m = rec.Strength()
	} else if !fs.Changed("sy") || !fs.Changed("su") {
		return m, errors.New("give --material or both --sy and --su")
	}

	if fs.Changed("sy") {
		m.Sy = sy
	}
	if fs.Changed("su") {
		m.Su = su
	}
	return m, nil
}

func endCondition(closed bool) domain.EndCondition {
	if closed {
		return domain.ClosedEnds
	}
	return domain.OpenEnds
}

// solver returns the configured burst solver for end condition end.
func solver(end domain.EndCondition) cylinder.BurstSolver {
	s := cfg.BurstSolver()
	s.EndCondition = end
	s.Logger = slog.Default()
	return s
}

func requireAll(fs *pflag.FlagSet, names ...string) error {
	for _, n := range names {
		if !fs.Changed(n) {
			return fmt.Errorf("required flag --%s not set", n)
		}
	}
	return nil
}
