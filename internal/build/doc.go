// Package build runs one tag build: it loads configuration and pages, runs a
// single tags.Pass over them and reports the resulting app data and page
// collection. All execution paths (build, watch) route through BuildService.
package build
