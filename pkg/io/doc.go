// Package io provides JSON import and export for solve transcripts.
//
// # Overview
//
// A transcript records one solve: the disk count, every move in order, and
// the final state of the rods. Transcripts are used for:
//
//   - Exporting a solve from the CLI (hanoi solve --format json)
//   - Responses of the HTTP API
//   - Cached solutions
//   - Independent verification with [Replay]
//
// # JSON Format
//
//	{
//	  "id": "3f0c1a9e-8d6e-4b8e-9a55-3f2d7c1b2e10",
//	  "disks": 2,
//	  "created_at": "2026-10-15T09:30:00Z",
//	  "moves": [
//	    {"step": 1, "disk": 0, "from": 0, "to": 1},
//	    {"step": 2, "disk": 1, "from": 0, "to": 2},
//	    {"step": 3, "disk": 0, "from": 1, "to": 2}
//	  ],
//	  "final": [[], [], [1, 0]]
//	}
//
// Rods in "final" are listed bottom first. "id" and "created_at" are
// informational; [Replay] only checks disks, moves and final.
package io
