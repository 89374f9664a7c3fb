// Package bootstrap seeds a fresh PixVault deployment from a directory of
// templated JSON files.
//
// Files are named <name>.<type>.json, where <type> selects the record type
// (singular or plural, e.g. "team" or "teams"). Each file is rendered as a
// liquid template against the process environment, parsed as either a
// single JSON object or an array of objects, and inserted into the matching
// table.
//
// The whole load runs in one database transaction with constraint checking
// deferred to commit, so files and records may reference each other in any
// order. Any failure rolls the entire load back; readers never observe a
// partial bootstrap.
//
//	loader := bootstrap.NewLoader(db)
//	if err := loader.Bootstrap("./bootstrap_data"); err != nil {
//	    log.Fatal(err)
//	}
//
// API key files are special: the plaintext key in the file is parsed and
// reduced to a derived hash (see pkg/auth); the raw secret is never stored.
package bootstrap
