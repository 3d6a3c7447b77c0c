//go:build !cl_version_2_1

package cl3

// Kernel cloning and sub-group queries need the cl_version_2_1 tag.
type subGroupEntries interface{}
