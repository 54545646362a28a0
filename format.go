// SYMBOLECC - A codeword generator for ECC200 style symbols.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/symbolecc/csv"
)

// JSON, XML and CSV encoders all implement this interface so we can
// simplify output formatting.
type Encoder interface {
	Encode(interface{}) error
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(msg interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, msg)
	return
}

// NewEncoder maps a format name to the encoder producing it.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(format) {
	case "plain":
		return PlainEncoder{w}, nil
	case "csv":
		return csv.NewEncoder(w), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return xml.NewEncoder(w), nil
	}

	return nil, errors.Errorf("invalid format: %q", format)
}

// A Codeword is one fully encoded symbol, byte sequences rendered as
// hexadecimal in transmission order.
type Codeword struct {
	Symbol   string
	DataSize int
	ECCSize  int
	Data     string
	Pad      string
	ECC      string
}

func (cw Codeword) String() string {
	return fmt.Sprintf("{Symbol:%s Data:%s Pad:%s ECC:%s}", cw.Symbol, cw.Data, cw.Pad, cw.ECC)
}

func (cw Codeword) Header() []string {
	return []string{"Symbol", "DataSize", "ECCSize", "Data", "Pad", "ECC"}
}

func (cw Codeword) Record() []string {
	return []string{
		cw.Symbol,
		strconv.Itoa(cw.DataSize),
		strconv.Itoa(cw.ECCSize),
		cw.Data,
		cw.Pad,
		cw.ECC,
	}
}

// A Format pairs a value with its BCH remainder. Protected is the value
// with the remainder appended in its low bits.
type Format struct {
	Value     uint32
	Remainder uint32
	Protected uint32
}

func (f Format) String() string {
	return fmt.Sprintf("{Value:%d Remainder:%d Protected:%d}", f.Value, f.Remainder, f.Protected)
}

func (f Format) Header() []string {
	return []string{"Value", "Remainder", "Protected"}
}

func (f Format) Record() []string {
	return []string{
		strconv.FormatUint(uint64(f.Value), 10),
		strconv.FormatUint(uint64(f.Remainder), 10),
		strconv.FormatUint(uint64(f.Protected), 10),
	}
}
