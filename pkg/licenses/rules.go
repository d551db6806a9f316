package licenses

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

// Rules is the category table incompatibility edges are derived from.
type Rules struct {
	Permissive     []string `toml:"permissive"`
	WeakCopyleft   []string `toml:"weak_copyleft"`
	StrongCopyleft []string `toml:"strong_copyleft"`
	LGPL           []string `toml:"lgpl"`

	// MPL names the license that is incompatible with every LGPL entry.
	MPL string `toml:"mpl"`

	// PermissiveVsWeakCopyleft also marks permissive licenses as
	// incompatible with weak-copyleft ones.
	PermissiveVsWeakCopyleft bool `toml:"permissive_vs_weak_copyleft"`
}

// DefaultRules returns the built-in category table.
func DefaultRules() Rules {
	return Rules{
		Permissive: []string{
			"MIT", "MIT-feh", "MIT-0",
			"MITNFA", "MIT-CMU", "X11",
			"BSD-2-Clause", "BSD-2-Clause-FreeBSD", "BSD-2-Clause-NetBSD",
			"BSD-3-Clause", "BSD-3-Clause-Attribution", "BSD-3-Clause-Clear",
			"BSD-3-Clause-No-Nuclear-Warranty", "BSD-3-Clause-No-Nuclear-License",
			"BSD-3-Clause-LBNL", "Apache-2.0", "Apache-1.0",
			"Apache-1.1", "Zlib", "zlib-acknowledgement",
			"Libpng",
		},
		WeakCopyleft: []string{
			"MPL-1.1", "MPL-2.0", "LGPL-3.0",
			"LGPL-2.1", "LGPL-2.0", "LGPL-3.0+",
			"LGPL-3.0-only", "LGPL-2.0+", "LGPL-2.1+",
			"LGPL-2.0-only", "LGPL-2.0-or-later", "LGPL-2.1-only",
			"LGPL-3.0-or-later", "LGPL-2.1-or-later",
		},
		StrongCopyleft: []string{
			"GPL-2.0", "GPL-3.0", "GPL-3.0-only",
			"GPL-3.0-or-later", "GPL-2.0+", "GPL-2.0-with-font-exception",
			"GPL-3.0+", "GPL-2.0-only", "GPL-2.0-or-later",
			"GPL-1.0-or-later", "GPL-1.0+", "GPL-2.0-with-classpath-exception",
			"GPL-3.0-with-GCC-exception", "GPL-2.0-with-GCC-exception", "GPL-1.0",
			"GPL-3.0-with-autoconf-exception", "AGPL-3.0", "AGPL-3.0-or-later",
			"AGPL-1.0", "AGPL-3.0-only",
		},
		LGPL: []string{
			"LGPL-3.0", "LGPL-2.1", "LGPL-2.0",
			"LGPL-3.0+", "LGPL-3.0-only", "LGPL-2.0+",
			"LGPL-2.1+", "LGPL-2.0-only", "LGPL-2.0-or-later",
			"LGPL-2.1-only", "LGPL-3.0-or-later", "LGPL-2.1-or-later",
		},
		MPL: "MPL-1.1",
	}
}

// LoadRules reads a TOML file on top of DefaultRules. Keys absent from
// the file keep their defaults; unknown keys are an error.
//
//	permissive_vs_weak_copyleft = true
//	strong_copyleft = ["GPL-2.0", "GPL-3.0", "AGPL-3.0"]
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	md, err := toml.DecodeFile(path, &rules)
	if err != nil {
		return Rules{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse rules %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Rules{}, errors.New(errors.ErrCodeInvalidInput, "rules %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "rules %s", path)
	}
	return rules, nil
}

// Validate rejects names listed as both permissive and copyleft.
func (r Rules) Validate() error {
	permissive := make(map[string]bool, len(r.Permissive))
	for _, p := range r.Permissive {
		permissive[p] = true
	}
	for _, list := range [][]string{r.WeakCopyleft, r.StrongCopyleft, r.LGPL} {
		for _, name := range list {
			if permissive[name] {
				return errors.New(errors.ErrCodeInvalidInput, "%s is listed as both permissive and copyleft", name)
			}
		}
	}
	return nil
}

// Category returns the category name for license, or "" if unlisted.
// Strong copyleft is checked first.
func (r Rules) Category(license string) string {
	switch {
	case contains(r.StrongCopyleft, license):
		return "strong-copyleft"
	case contains(r.WeakCopyleft, license), contains(r.LGPL, license), license == r.MPL:
		return "weak-copyleft"
	case contains(r.Permissive, license):
		return "permissive"
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
