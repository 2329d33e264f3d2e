package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one named datasource connection in the profiles file
// (~/.reportpilot.cfg by default).
type Profile struct {
	Name string
	DSN  string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetDSN(ctx context.Context, profile string) (string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, Profile{
			Name: section.Name(),
			DSN:  section.Key("dsn").String(),
		})
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetDSN(_ context.Context, profile string) (string, error) {
	section := cr.cfg.Section(profile)
	if section == nil || len(section.Keys()) == 0 {
		return "", fmt.Errorf("profile %s not found", profile)
	}

	dsn := section.Key("dsn").String()
	if dsn == "" {
		return "", fmt.Errorf("profile %s has no dsn", profile)
	}
	return dsn, nil
}
