// Package refdata serves materials, cartridges, fit tolerances and pressure
// standards from YAML files, falling back to built-in tables.
package refdata

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobarrel/internal/logger"
	"github.com/alexiusacademia/gobarrel/internal/tolerance"
)

// ErrNotFound is returned when a lookup names an unknown entry.
var ErrNotFound = errors.New("refdata: not found")

// Data file names inside the data directory.
const (
	MaterialsFile  = "materials.yaml"
	CartridgesFile = "cartridges.yaml"
	TolerancesFile = "tolerances.yaml"
	PressureFile   = "pressure.yaml"
)

// Repository is safe for concurrent use. Each table is read on first use.
type Repository struct {
	dir    string
	logger *slog.Logger

	materials  *Lazy[map[string]Material]
	cartridges *Lazy[map[string]Cartridge]
	fits       *Lazy[map[string]*fitTable]
	pressures  *Lazy[map[string]PressureStandard]
}

var (
	_ tolerance.TableProvider          = (*Repository)(nil)
	_ tolerance.PressureFactorProvider = (*Repository)(nil)
)

// NewRepository reads tables from dir. An empty dir uses built-in data only.
func NewRepository(dir string, l *slog.Logger) *Repository {
	if l == nil {
		l = logger.Discard()
	}
	r := &Repository{dir: dir, logger: l}
	r.materials = NewLazy(r.loadMaterials)
	r.cartridges = NewLazy(r.loadCartridges)
	r.fits = NewLazy(r.loadFits)
	r.pressures = NewLazy(r.loadPressures)
	return r
}

// Material looks up a material by name, ignoring case.
func (r *Repository) Material(name string) (Material, error) {
	m, err := r.materials.Get()
	if err != nil {
		return Material{}, err
	}
	v, ok := m[key(name)]
	if !ok {
		return Material{}, fmt.Errorf("%w: material %q", ErrNotFound, name)
	}
	return v, nil
}

// Materials lists every material sorted by name.
func (r *Repository) Materials() ([]Material, error) {
	m, err := r.materials.Get()
	if err != nil {
		return nil, err
	}
	out := make([]Material, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Cartridge looks up a cartridge by name, ignoring case.
func (r *Repository) Cartridge(name string) (Cartridge, error) {
	m, err := r.cartridges.Get()
	if err != nil {
		return Cartridge{}, err
	}
	v, ok := m[key(name)]
	if !ok {
		return Cartridge{}, fmt.Errorf("%w: cartridge %q", ErrNotFound, name)
	}
	return v, nil
}

// Cartridges lists every cartridge sorted by name.
func (r *Repository) Cartridges() ([]Cartridge, error) {
	m, err := r.cartridges.Get()
	if err != nil {
		return nil, err
	}
	out := make([]Cartridge, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Tolerance returns the bore/shaft deviations (µm) of a fit class at a
// nominal diameter (mm).
func (r *Repository) Tolerance(standard, fitClass string, diameter float64) (tolerance.Spec, error) {
	m, err := r.fits.Get()
	if err != nil {
		return tolerance.Spec{}, err
	}
	t, ok := m[fitKey(standard, fitClass)]
	if !ok {
		return tolerance.Spec{}, fmt.Errorf("%w: fit %s %s", ErrNotFound, standard, fitClass)
	}
	if !(diameter > 0) {
		return tolerance.Spec{}, fmt.Errorf("refdata: fit %s %s: diameter must be positive: %g mm", standard, fitClass, diameter)
	}
	return t.at(diameter), nil
}

// FitClasses lists every tabulated fit sorted by standard then class.
func (r *Repository) FitClasses() ([]FitRef, error) {
	m, err := r.fits.Get()
	if err != nil {
		return nil, err
	}
	out := make([]FitRef, 0, len(m))
	for _, t := range m {
		out = append(out, t.ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Standard != out[j].Standard {
			return out[i].Standard < out[j].Standard
		}
		return out[i].FitClass < out[j].FitClass
	})
	return out, nil
}

// PressureFactor returns the fractional pressure variation of a standard.
func (r *Repository) PressureFactor(standard string) (float64, error) {
	m, err := r.pressures.Get()
	if err != nil {
		return 0, err
	}
	v, ok := m[key(standard)]
	if !ok {
		return 0, fmt.Errorf("%w: pressure standard %q", ErrNotFound, standard)
	}
	return v.Factor, nil
}

// PressureStandards lists the known pressure standards sorted by name.
func (r *Repository) PressureStandards() ([]PressureStandard, error) {
	m, err := r.pressures.Get()
	if err != nil {
		return nil, err
	}
	out := make([]PressureStandard, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repository) loadMaterials() (map[string]Material, error) {
	doc, err := loadYAML(r, MaterialsFile, builtinMaterials)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Material, len(doc.Materials))
	for _, m := range doc.Materials {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("refdata: %s: material without a name", MaterialsFile)
		}
		if err := m.Strength().Validate(); err != nil {
			return nil, fmt.Errorf("refdata: %s: material %q: %w", MaterialsFile, m.Name, err)
		}
		if !(m.E > 0) || !(m.Nu >= 0 && m.Nu < 0.5) {
			return nil, fmt.Errorf("refdata: %s: material %q: need E > 0 and 0 <= nu < 0.5, got E=%g GPa nu=%g",
				MaterialsFile, m.Name, m.E, m.Nu)
		}
		if _, dup := out[key(m.Name)]; dup {
			return nil, fmt.Errorf("refdata: %s: duplicate material %q", MaterialsFile, m.Name)
		}
		out[key(m.Name)] = m
	}
	return out, nil
}

func (r *Repository) loadCartridges() (map[string]Cartridge, error) {
	doc, err := loadYAML(r, CartridgesFile, builtinCartridges)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Cartridge, len(doc.Cartridges))
	for _, c := range doc.Cartridges {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("refdata: %s: cartridge without a name", CartridgesFile)
		}
		if !(c.MaxPressure > 0) || !(c.BoreDiameter > 0) {
			return nil, fmt.Errorf("refdata: %s: cartridge %q: need positive pressure and bore, got %g MPa %g mm",
				CartridgesFile, c.Name, c.MaxPressure, c.BoreDiameter)
		}
		if _, dup := out[key(c.Name)]; dup {
			return nil, fmt.Errorf("refdata: %s: duplicate cartridge %q", CartridgesFile, c.Name)
		}
		out[key(c.Name)] = c
	}
	return out, nil
}

func (r *Repository) loadFits() (map[string]*fitTable, error) {
	doc, err := loadYAML(r, TolerancesFile, builtinTolerances)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*fitTable, len(doc.Tables))
	for _, t := range doc.Tables {
		ft, err := newFitTable(t)
		if err != nil {
			return nil, fmt.Errorf("refdata: %s: %w", TolerancesFile, err)
		}
		k := fitKey(t.Standard, t.FitClass)
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("refdata: %s: duplicate fit %s %s", TolerancesFile, t.Standard, t.FitClass)
		}
		out[k] = ft
	}
	return out, nil
}

func (r *Repository) loadPressures() (map[string]PressureStandard, error) {
	doc, err := loadYAML(r, PressureFile, builtinPressure)
	if err != nil {
		return nil, err
	}
	out := make(map[string]PressureStandard, len(doc.Standards))
	for name, f := range doc.Standards {
		if !(f >= 0 && f < 1) {
			return nil, fmt.Errorf("refdata: %s: standard %q: factor must be in [0, 1), got %g", PressureFile, name, f)
		}
		if _, dup := out[key(name)]; dup {
			return nil, fmt.Errorf("refdata: %s: duplicate standard %q", PressureFile, name)
		}
		out[key(name)] = PressureStandard{Name: name, Factor: f}
	}
	return out, nil
}

// loadYAML decodes file from the data directory, or returns fallback() when
// the directory is unset or the file does not exist.
func loadYAML[T any](r *Repository, file string, fallback func() T) (T, error) {
	var zero T
	if r.dir == "" {
		r.logger.Debug("refdata builtin", "file", file)
		return fallback(), nil
	}

	path := filepath.Join(r.dir, file)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("refdata file missing, using builtin", "path", path)
		return fallback(), nil
	}
	if err != nil {
		return zero, fmt.Errorf("refdata: read %s: %w", path, err)
	}

	var doc T
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return zero, fmt.Errorf("refdata: parse %s: %w", path, err)
	}
	r.logger.Debug("refdata loaded", "path", path)
	return doc, nil
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func fitKey(standard, fitClass string) string {
	return key(standard) + "|" + key(fitClass)
}
