// Package diagfmt renders check results: the historical stage report,
// pretty and short diagnostic listings, JSON, debug dumps and token tables.
package diagfmt
