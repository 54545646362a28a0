/*
SYMBOLECC generates the error correction codewords carried by ECC200 style
square matrix symbols: Reed-Solomon redundancy over GF(256) with field
polynomial 301 for the data region, and binary BCH remainders for short
format fields.

Global Flags:

	-format="plain"

Sets the output format. Defaults to plain. May also be set through the
SYMBOLECC_FORMAT environment variable.

Plain text is formatted using the following format string:

	{Symbol:%s Data:%s Pad:%s ECC:%s}

No fields are omitted for csv, json or xml output. CSV output begins with a
header row.

	-quiet=false

Omits state information logged before output.

Commands:

	rs

Generates Reed-Solomon redundancy for a payload. The payload is given
either as hexadecimal codeword values:

	symbolecc rs -hex 8EA4BA -side 10

or as text, stored per ASCII encodation with each character as its value
plus one:

	symbolecc rs -text Wikipedia -side 16

A side of 0 (the default) selects the smallest square symbol whose data
capacity holds the payload. The -fnc1 flag leads the payload with the FNC1
codeword for GS1 formatted data. Payloads shorter than the symbol's data
capacity are extended with the end of data sentinel followed by the
randomizing pad sequence before redundancy is computed.

	bch

Computes the BCH remainder of a format field value:

	symbolecc bch -genpoly 1335 -width 5 -value 12

With -table, divides every value of the given width and emits one record
per value:

	symbolecc -format=csv bch -table

Each record carries the value, its remainder and the protected word formed
by appending the remainder to the value.

	examples

Encodes a set of worked examples, one per symbol size, through the selected
output format.
*/
package main
