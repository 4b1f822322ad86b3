// typecode.go - numeric type codes for column 2
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package fsvtab

// Type codes returned by column 2 ("type"). These are an arbitrary
// but stable numbering; callers should compare against the named
// constants, not the literal values.
const (
	TypeRegular int64 = iota
	TypeDirectory
	TypeChar
	TypeBlock
	TypePipe
	TypeLink
	TypeSocket
	TypeUnknown
)

// TypeDir is an alias for TypeDirectory kept short for use in
// TypeCode's switch.
const TypeDir = TypeDirectory
