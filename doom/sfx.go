// SPDX-License-Identifier: EPL-2.0

package doom

// SfxInfo describes a sound effect. When Link is set the linked effect's
// asset is played instead.
type SfxInfo struct {
	Name string
	Link *SfxInfo
}

// Substitution maps a sound name to its replacement, e.g. from a dehacked
// patch. A nil Substitution leaves names unchanged.
type Substitution func(name string) string

const (
	sfxPrefix = "ds"
	// lumpNameLen is the longest name a WAD directory entry holds.
	lumpNameLen = 8
)

// resolve follows at most one link.
func (s *SfxInfo) resolve() *SfxInfo {
	if s.Link != nil {
		return s.Link
	}
	return s
}

func (f Substitution) apply(name string) string {
	if f == nil {
		return name
	}
	return f(name)
}

// SfxLumpName returns the WAD lump name for sfx. Doom names its sound lumps
// with a "ds" prefix; Heretic and Hexen do not.
func SfxLumpName(sfx *SfxInfo, usePrefix bool, subst Substitution) string {
	name := subst.apply(sfx.resolve().Name)
	if usePrefix {
		name = sfxPrefix + name
	}
	if len(name) > lumpNameLen {
		name = name[:lumpNameLen]
	}
	return name
}

// SfxPath returns the asset path for sfx: sound/ds<name>.wav.
func SfxPath(sfx *SfxInfo, subst Substitution) string {
	return "sound/" + sfxPrefix + subst.apply(sfx.resolve().Name) + ".wav"
}

// SongPath returns the asset path for a registered song name.
func SongPath(name string) string {
	return "sound/" + name + ".mp3"
}
