// Package ui formats picturedb output for the terminal with fatih/color.
//
// Colors are disabled automatically when stdout is not a terminal or NO_COLOR
// is set.
package ui
