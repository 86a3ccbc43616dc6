// Taskgrid - Project and Kanban Board Backend
// Copyright 2026 Taskgrid Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/taskgrid/taskgrid

package auth

import (
	//nolint:gosec // Gravatar's protocol requires MD5; not used for security.
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL returns the Gravatar avatar URL for an email address.
// The hash input is the trimmed, lowercased email per the Gravatar spec;
// unknown addresses fall back to the "mystery man" image.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
