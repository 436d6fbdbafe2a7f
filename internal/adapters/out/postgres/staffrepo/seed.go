package staffrepo

import (
	"context"
	"fmt"
	"os"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"

	"gopkg.in/yaml.v3"
)

// seedFile is the layout of a staff seed document:
//
//	staff:
//	  - id: 5b8a6c1e-0d7e-4a43-9a36-1f0e2d3c4b5a
//	    name: Ravi
//	    role: Cutter
//	    certified: true
//	    experience: 7
type seedFile struct {
	Staff []seedEntry `yaml:"staff"`
}

type seedEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Role       string `yaml:"role"`
	Certified  bool   `yaml:"certified"`
	Experience int    `yaml:"experience"`
	Active     *bool  `yaml:"active"`
}

// ParseSeed decodes a YAML staff seed document. Entries without an explicit
// active flag are active.
func ParseSeed(data []byte) ([]*staff.Staff, error) {
	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse staff seed: %w", err)
	}

	members := make([]*staff.Staff, 0, len(doc.Staff))
	for i, e := range doc.Staff {
		id, err := kernel.UUIDFromString(e.ID)
		if err != nil {
			return nil, fmt.Errorf("staff seed entry %d: %w", i, err)
		}
		role, err := staff.ParseRole(e.Role)
		if err != nil {
			return nil, fmt.Errorf("staff seed entry %d: %w", i, err)
		}
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		s, err := staff.NewStaff(id, e.Name, role, e.Certified, e.Experience, active)
		if err != nil {
			return nil, fmt.Errorf("staff seed entry %d: %w", i, err)
		}
		members = append(members, s)
	}
	return members, nil
}

// SeedFromFile loads the YAML document at path and upserts every entry.
// It returns the number of records written.
func (r *GormStaffDirectory) SeedFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read staff seed: %w", err)
	}
	members, err := ParseSeed(data)
	if err != nil {
		return 0, err
	}
	if err := r.Save(ctx, members...); err != nil {
		return 0, err
	}
	return len(members), nil
}
