// SPDX-License-Identifier: EPL-2.0

// Package wad reads the lump directory of IWAD and PWAD archives so lump
// names can be turned into lump numbers.
package wad
