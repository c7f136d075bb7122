// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package sensor

const DefaultConfiguration = "config123.cfg"

type ConfigurationVerifier struct {
	Accepted string
}

// IsValid is an exact match against the accepted configuration file name.
func (c ConfigurationVerifier) IsValid(configuration string) bool {
	return configuration != "" && configuration == c.Accepted
}
