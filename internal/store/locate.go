// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"os"
	"path/filepath"
	"sort"
)

// backupFileID is the fixed hashed name of the AddressBook database inside
// an iTunes/MobileSync device backup (SHA-1 of its on-device domain path).
const backupFileID = "31bb7ba8914766d4ba40d6dfb6113c8b614be442"

// backupGlobs are home-relative glob patterns for MobileSync backups. Newer
// backups shard files into two-character subdirectories.
var backupGlobs = []string{
	filepath.Join("Library", "Application Support", "MobileSync", "Backup", "*", backupFileID),
	filepath.Join("Library", "Application Support", "MobileSync", "Backup", "*", backupFileID[:2], backupFileID),
}

// Locate searches the user's MobileSync backups for an AddressBook database
// copy and returns the most recent match. The second return is false when
// no backup is found.
func Locate() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	var matches []string
	for _, pattern := range backupGlobs {
		m, err := filepath.Glob(filepath.Join(home, pattern))
		if err != nil {
			continue
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return "", false
	}

	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]) < modTime(matches[j])
	})
	return matches[len(matches)-1], true
}

func modTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}
