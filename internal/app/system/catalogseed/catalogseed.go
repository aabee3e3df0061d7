// Package catalogseed loads program and institution catalogs from JSON
// files and writes them into the catalog store.
package catalogseed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dalemusser/coursecompare/internal/app/system/costcalc"
	"github.com/dalemusser/coursecompare/internal/domain/models"
	"go.uber.org/zap"
)

// File names expected inside a seed directory.
const (
	ProgramsFile     = "programs.json"
	InstitutionsFile = "institutions.json"
)

// Catalog is the decoded content of a seed directory.
type Catalog struct {
	Programs     []models.Program
	Institutions []models.Institution
}

// Writer is the subset of the catalog store the seeder needs.
type Writer interface {
	UpsertProgram(ctx context.Context, p models.Program) error
	UpsertInstitution(ctx context.Context, inst models.Institution) error
}

// DecodePrograms reads a JSON array of programs. Every program needs an ID.
func DecodePrograms(r io.Reader) ([]models.Program, error) {
	var out []models.Program
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode programs: %w", err)
	}
	for i, p := range out {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("program %d (%q): missing id", i, p.Name)
		}
	}
	return out, nil
}

// DecodeInstitutions reads a JSON array of institutions. Every institution
// needs an ID, and a degree-conditioned discount pattern must compile.
func DecodeInstitutions(r io.Reader) ([]models.Institution, error) {
	var out []models.Institution
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode institutions: %w", err)
	}
	for i, inst := range out {
		if strings.TrimSpace(inst.ID) == "" {
			return nil, fmt.Errorf("institution %d (%q): missing id", i, inst.Name)
		}
		if d := inst.Discount.Degree; d != nil {
			if _, err := costcalc.CompileDegreePattern(d.Pattern); err != nil {
				return nil, fmt.Errorf("institution %s: %w", inst.ID, err)
			}
		}
	}
	return out, nil
}

func decodeFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// LoadDir reads both catalog files from dir. A missing file yields an
// empty list; any other problem is an error.
func LoadDir(dir string) (Catalog, error) {
	var cat Catalog

	programs, err := decodeFile(filepath.Join(dir, ProgramsFile), DecodePrograms)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Catalog{}, fmt.Errorf("%s: %w", ProgramsFile, err)
	}
	cat.Programs = programs

	institutions, err := decodeFile(filepath.Join(dir, InstitutionsFile), DecodeInstitutions)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Catalog{}, fmt.Errorf("%s: %w", InstitutionsFile, err)
	}
	cat.Institutions = institutions

	return cat, nil
}

// Seed upserts every institution and program of cat. Institutions go first
// so programs never reference a missing owner mid-seed.
func Seed(ctx context.Context, w Writer, cat Catalog, logger *zap.Logger) error {
	for _, inst := range cat.Institutions {
		if err := w.UpsertInstitution(ctx, inst); err != nil {
			return fmt.Errorf("upsert institution %s: %w", inst.ID, err)
		}
	}
	for _, p := range cat.Programs {
		if err := w.UpsertProgram(ctx, p); err != nil {
			return fmt.Errorf("upsert program %s: %w", p.ID, err)
		}
	}
	logger.Info("catalog seeded",
		zap.Int("institutions", len(cat.Institutions)),
		zap.Int("programs", len(cat.Programs)))
	return nil
}
