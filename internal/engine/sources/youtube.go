package sources

// YouTube access is split across three files by responsibility:
//   innertube.go  — Innertube API types, constants, and low-level HTTP primitives
//   transcript.go — transcript fetching (watch page scrape, engagement panel,
//                   ANDROID player fallback)
//   metadata.go   — video metadata via YouTube Data API v3
// extract.go ties them together into the transcript extraction operation.
