// Package io reads bracket diagram documents and writes rendered diagrams
// as JSON.
//
// # Overview
//
// A diagram document names the root and lists its levels in order, so a
// diagram can be kept in a file instead of being spelled out as level
// tokens on the command line. Three encodings are accepted:
//
//	# cup.toml
//	name = "Cup"
//	gap_factor = 2
//	levels = [
//	  ["final"],
//	  ["semi-a", "semi-b"],
//	  ["q1", "q2", "q3", "q4"],
//	]
//
//	# cup.yaml
//	name: Cup
//	levels:
//	  - [final]
//	  - [semi-a, semi-b]
//
//	{"name": "Cup", "levels": [["final"], ["semi-a", "semi-b"]]}
//
// Because levels is a list, entry i is level i and the indices are always
// contiguous. An empty list is an empty level; documents may hold empty
// levels, and callers that require labels on every level check with
// levels.Validate. Unknown keys are an error in every encoding.
//
// # Import
//
// Use [ImportDiagram] to read a file (the format follows the extension), or
// [ReadDiagram] to read from any io.Reader with an explicit [Format]:
//
//	doc, err := io.ImportDiagram("cup.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := bracket.Render(doc.Name, doc.LevelMap())
//
// # Export
//
// [WriteJSON] encodes a rendered [bracket.Diagram] as a structured row
// sequence, for tools that post-process the layout instead of the text.
package io
