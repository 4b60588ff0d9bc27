// Package presets loads named map definitions from JSON or YAML files so
// pages and the CLI can refer to a map by name instead of building it in code.
package presets
