// Package pkg provides the libraries behind judgefmt.
//
// # Overview
//
// judgefmt draws a named root joined by bracket lines to ordered levels of
// labels. The pkg directory is organized as:
//
//  1. [bracket] - Layout engine: measures levels and renders aligned rows
//  2. [levels] - Builds and validates level maps from -lN label tokens
//  3. [io] - Diagram documents (TOML, YAML, JSON) and JSON export
//  4. [errors] - Structured error codes
//  5. [buildinfo] - Version information set at build time
//
// # Data Flow
//
//	-l0 root -l1 a bb          cup.toml
//	         ↓                     ↓
//	    [levels].Build      [io].ImportDiagram
//	         ↓                     ↓
//	         bracket.LevelMap ←────┘
//	                  ↓
//	          [bracket].Render
//	                  ↓
//	     text rows / [io].WriteJSON
//
// # Quick Start
//
//	m, err := levels.Build([]string{"-l0", "root", "-l1", "a", "bb"})
//	if err != nil {
//	    return err
//	}
//	bracket.Render("J", m).WriteTo(os.Stdout)
//
// [bracket]: github.com/matzehuels/judgefmt/pkg/bracket
// [levels]: github.com/matzehuels/judgefmt/pkg/levels
// [io]: github.com/matzehuels/judgefmt/pkg/io
// [errors]: github.com/matzehuels/judgefmt/pkg/errors
// [buildinfo]: github.com/matzehuels/judgefmt/pkg/buildinfo
package pkg
