// Package commands implements the rtrw command line: the HTTP server and
// the maintenance commands that run against the same configuration.
//
// Usage:
//
//	rtrw serve
//	rtrw migrate --user budi
//	rtrw report --user adminrw01 --out laporan.txt
//	rtrw import umkm.html
//	rtrw user create-admin --username adminrw01 --password ... --name "Ketua RW 01" --rw 01
package commands
