// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const DefaultMinimumFirmware = "59.1.12Rev4"

var (
	firmwarePattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)Rev(\d+)$`)

	ErrInvalidVersion = errors.New("invalid firmware version")
)

// Version is a firmware version in the form <major>.<minor>.<patch>Rev<revision>.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Revision int
}

func ParseVersion(version string) (Version, error) {
	m := firmwarePattern.FindStringSubmatch(version)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	var parts [4]int
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %s", ErrInvalidVersion, version, err)
		}
		parts[i] = n
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2], Revision: parts[3]}, nil
}

func MustParseVersion(version string) Version {
	v, err := ParseVersion(version)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare orders versions component by component, most significant first.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, o.Patch); c != 0 {
		return c
	}
	return cmp.Compare(v.Revision, o.Revision)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%dRev%d", v.Major, v.Minor, v.Patch, v.Revision)
}

type FirmwareVerifier struct {
	Minimum Version
}

func NewFirmwareVerifier(minimum string) (FirmwareVerifier, error) {
	v, err := ParseVersion(minimum)
	if err != nil {
		return FirmwareVerifier{}, fmt.Errorf("unable to parse minimum firmware: %w", err)
	}
	return FirmwareVerifier{Minimum: v}, nil
}

// IsUpToDate reports whether version is at least the minimum version.
// Versions that can't be parsed are considered outdated.
func (f FirmwareVerifier) IsUpToDate(version string) bool {
	v, err := ParseVersion(version)
	if err != nil {
		return false
	}
	return v.Compare(f.Minimum) >= 0
}
