// Package io provides import and export for stackup definitions.
//
// # Overview
//
// This package reads and writes stackup definition files so the layout
// engine can consume data from external tools:
//
//   - Hand-written TOML definitions for quick iteration
//   - JSON definitions exported by EDA extractors or earlier runs
//   - Round-trip preservation: import, lay out, export, re-import
//
// # TOML Format
//
//	name = "4-layer controller"
//
//	[[layers]]
//	name = "F.Mask"
//	material = "Soldermask"
//	kind = "soldermask"
//	thickness_mm = 0.015
//
//	[[layers]]
//	name = "F.Cu"
//	material = "Copper"
//	kind = "copper"
//	thickness_mm = 0.035
//
// # JSON Format
//
//	{
//	  "name": "4-layer controller",
//	  "layers": [
//	    {"name": "F.Cu", "material": "Copper", "kind": "copper", "thickness_mm": 0.035}
//	  ]
//	}
//
// Unknown kind strings map to "other" rather than failing, so exotic
// layers (silkscreen, solder paste) survive import.
//
// # Import
//
// Use [ImportStack] to read a definition from a file path; the format is
// chosen by extension (.toml or .json). [ReadJSON] and [ReadTOML] read
// from any io.Reader.
//
// # Export
//
// Use [ExportJSON] to write a stack to a file, or [WriteJSON] to write
// to any io.Writer. Export preserves every field so a re-import yields
// an identical stack.
package io
