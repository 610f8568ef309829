// Package viz renders concentration profiles in the terminal, either as a
// static asciigraph plot or as an interactive bubbletea sweep down the column.
package viz
