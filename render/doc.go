// Package render presents a planned route: Overlay draws it over the grid
// with gonum/plot, and WriteReport encodes it as JSON or YAML.
package render
