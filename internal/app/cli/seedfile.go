package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// SeedFile is the TOML document read by `yelpcampctl seed`.
//
//	[[users]]
//	username = "colt"
//	password = "secret-password"
//
//	[[campgrounds]]
//	name = "Salmon Creek"
//	image = "https://example.com/salmon.jpg"
//	description = "Plenty of fish."
//	author = "colt"
//
//	  [[campgrounds.comments]]
//	  author = "colt"
//	  text = "Great place, no internet."
type SeedFile struct {
	Users       []SeedUser       `toml:"users"`
	Campgrounds []SeedCampground `toml:"campgrounds"`
}

type SeedUser struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type SeedCampground struct {
	Name        string        `toml:"name"`
	Image       string        `toml:"image"`
	Description string        `toml:"description"`
	Author      string        `toml:"author"`
	Comments    []SeedComment `toml:"comments"`
}

type SeedComment struct {
	Author string `toml:"author"`
	Text   string `toml:"text"`
}

// DecodeSeedFile parses and validates a seed document.
func DecodeSeedFile(r io.Reader) (SeedFile, error) {
	var sf SeedFile
	md, err := toml.NewDecoder(r).Decode(&sf)
	if err != nil {
		return SeedFile{}, fmt.Errorf("parse seed file: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return SeedFile{}, fmt.Errorf("unknown keys in seed file: %s", strings.Join(keys, ", "))
	}
	if err := sf.Validate(); err != nil {
		return SeedFile{}, err
	}
	return sf, nil
}

// Validate checks required fields and that every author names a user
// declared in the same file.
func (sf SeedFile) Validate() error {
	users := make(map[string]bool, len(sf.Users))
	for i, u := range sf.Users {
		name := strings.TrimSpace(u.Username)
		if name == "" {
			return fmt.Errorf("users[%d]: username is required", i)
		}
		if u.Password == "" {
			return fmt.Errorf("users[%d] %q: password is required", i, name)
		}
		if users[name] {
			return fmt.Errorf("users[%d]: duplicate username %q", i, name)
		}
		users[name] = true
	}

	for i, cg := range sf.Campgrounds {
		if strings.TrimSpace(cg.Name) == "" {
			return fmt.Errorf("campgrounds[%d]: name is required", i)
		}
		if strings.TrimSpace(cg.Image) == "" {
			return fmt.Errorf("campgrounds[%d] %q: image is required", i, cg.Name)
		}
		if !users[strings.TrimSpace(cg.Author)] {
			return fmt.Errorf("campgrounds[%d] %q: author %q is not a seeded user", i, cg.Name, cg.Author)
		}
		for j, cm := range cg.Comments {
			if strings.TrimSpace(cm.Text) == "" {
				return fmt.Errorf("campgrounds[%d].comments[%d]: text is required", i, j)
			}
			if !users[strings.TrimSpace(cm.Author)] {
				return fmt.Errorf("campgrounds[%d].comments[%d]: author %q is not a seeded user", i, j, cm.Author)
			}
		}
	}
	return nil
}
