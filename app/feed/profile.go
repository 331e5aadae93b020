package feed

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultBadgeHeight = 25

// DefaultProfile returns the profile used when no profile file exists.
func DefaultProfile() *Profile {
	return &Profile{
		Name:        "Tanate Meaksriswan",
		Role:        "software engineer",
		Location:    "Bangkok, Thailand",
		City:        "Bangkok",
		FlagIcon:    "https://image.flaticon.com/icons/svg/323/323281.svg",
		CityIcon:    "https://image.flaticon.com/icons/svg/909/909143.svg",
		BadgeHeight: defaultBadgeHeight,
		Badges: []Badge{
			{
				Name:  "linkedin",
				Image: "https://img.shields.io/badge/linkedin-%230077B5.svg?&style=for-the-badge&logo=linkedin&logoColor=white",
				URL:   "https://www.linkedin.com/in/ipiranhaa",
			},
			{
				Name:  "medium",
				Image: "https://img.shields.io/badge/medium-%2312100E.svg?&style=for-the-badge&logo=medium&logoColor=white",
				URL:   "https://medium.com/@ipiranhaa",
			},
		},
		BuildStatusBadge: "https://github.com/ipiranhaa/ipiranhaa/workflows/README%20build/badge.svg",
		RefreshNote:      "every 3 hours",
	}
}

// LoadProfile reads a YAML profile. Fields left out of the file keep their default values.
func LoadProfile(path string) (*Profile, error) {
	profile := DefaultProfile()

	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("Profile file not found, using defaults", "path", path)
			return profile, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if profile.BadgeHeight == 0 {
		profile.BadgeHeight = defaultBadgeHeight
	}

	if err := validateProfile(profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	slog.Debug("Profile loaded", "path", path, "name", profile.Name, "badges", len(profile.Badges))

	return profile, nil
}

func validateProfile(profile *Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("name is required")
	}
	if profile.BadgeHeight < 0 {
		return fmt.Errorf("badge height must be non-negative")
	}

	for i, badge := range profile.Badges {
		if badge.Image == "" {
			return fmt.Errorf("badge at index %d must have an image", i)
		}
		if badge.URL == "" {
			return fmt.Errorf("badge at index %d must have a url", i)
		}
	}

	return nil
}
