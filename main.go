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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/bemasher/symbolecc/bch"
	"github.com/bemasher/symbolecc/rs"
	"github.com/bemasher/symbolecc/symbol"
)

// fnc1 leads GS1 formatted payloads.
const fnc1 = 232

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "symbolecc"
	app.Usage = "generate error correction codewords for square matrix symbols"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "format, f",
			Value:  "plain",
			Usage:  "output format: plain, csv, json or xml",
			EnvVar: "SYMBOLECC_FORMAT",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "omit state information logged before output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "rs",
			Usage: "generate Reed-Solomon redundancy for a payload",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hex",
					Usage: "payload given as hexadecimal codeword values",
				},
				cli.StringFlag{
					Name:  "text",
					Usage: "payload given as text, stored as value+1 per ASCII encodation",
				},
				cli.BoolFlag{
					Name:  "fnc1",
					Usage: "lead the payload with the FNC1 codeword",
				},
				cli.IntFlag{
					Name:  "side",
					Value: 0,
					Usage: "symbol side length in modules, 0 selects the smallest fit",
				},
			},
			Action: encodeAction,
		},
		{
			Name:  "bch",
			Usage: "compute BCH remainders protecting format fields",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "genpoly",
					Value: 1335,
					Usage: "generator polynomial",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 5,
					Usage: "value width in bits",
				},
				cli.UintFlag{
					Name:  "value",
					Value: 0,
					Usage: "value to divide",
				},
				cli.BoolFlag{
					Name:  "table",
					Usage: "divide every value of the given width",
				},
			},
			Action: remainderAction,
		},
		{
			Name:   "examples",
			Usage:  "encode a set of worked examples, one per symbol size",
			Action: examplesAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func encodeAction(c *cli.Context) error {
	enc, err := NewEncoder(c.GlobalString("format"), os.Stdout)
	if err != nil {
		return err
	}

	payload, err := buildPayload(c.String("hex"), c.String("text"), c.Bool("fnc1"))
	if err != nil {
		return err
	}

	cw, err := encodeSymbol(rs.NewEncoder(), payload, c.Int("side"))
	if err != nil {
		return err
	}

	if !c.GlobalBool("quiet") {
		log.WithFields(log.Fields{
			"symbol":  cw.Symbol,
			"payload": len(payload),
			"ecc":     cw.ECCSize,
		}).Info("encoded")
	}

	return errors.Wrap(enc.Encode(cw), "encoding output")
}

func remainderAction(c *cli.Context) error {
	enc, err := NewEncoder(c.GlobalString("format"), os.Stdout)
	if err != nil {
		return err
	}

	b := bch.NewBCH(uint32(c.Uint("genpoly")))
	width := c.Int("width")

	if !c.GlobalBool("quiet") {
		log.WithFields(log.Fields{
			"genpoly": b.GenPoly,
			"width":   width,
		}).Info("dividing")
	}

	if c.Bool("table") {
		table, err := b.Table(width)
		if err != nil {
			return err
		}

		for v, r := range table {
			if err := enc.Encode(newFormat(uint32(v), r, b)); err != nil {
				return errors.Wrap(err, "encoding output")
			}
		}

		return nil
	}

	v := uint32(c.Uint("value"))
	r, err := b.Remainder(v, width)
	if err != nil {
		return err
	}

	return errors.Wrap(enc.Encode(newFormat(v, r, b)), "encoding output")
}

// Worked examples covering each payload form, including automatic size
// selection for the url.
var examples = []struct {
	name string
	hex  string
	text string
	fnc1 bool
	side int
}{
	{name: "raw", hex: "8EA4BA", side: 10},
	{name: "wikipedia", text: "Wikipedia", side: 16},
	{name: "name", text: "Hourez Jonathan", side: 18},
	{name: "gs1", hex: "8385AFA19682828D938B8D9B8C424344458EA4", fnc1: true, side: 20},
	{name: "url", text: "http://www.idautomation.com"},
}

func examplesAction(c *cli.Context) error {
	enc, err := NewEncoder(c.GlobalString("format"), os.Stdout)
	if err != nil {
		return err
	}

	rsEnc := rs.NewEncoder()
	for _, ex := range examples {
		payload, err := buildPayload(ex.hex, ex.text, ex.fnc1)
		if err != nil {
			return errors.Wrap(err, ex.name)
		}

		cw, err := encodeSymbol(rsEnc, payload, ex.side)
		if err != nil {
			return errors.Wrap(err, ex.name)
		}

		if !c.GlobalBool("quiet") {
			log.WithFields(log.Fields{
				"example": ex.name,
				"symbol":  cw.Symbol,
			}).Info("encoded")
		}

		if err := enc.Encode(cw); err != nil {
			return errors.Wrap(err, "encoding output")
		}
	}

	return nil
}

// buildPayload decodes one of the two payload forms. Text is stored per
// ASCII encodation, each character as its value plus one.
func buildPayload(hexStr, text string, gs1 bool) ([]byte, error) {
	if hexStr != "" && text != "" {
		return nil, errors.New("hex and text are mutually exclusive")
	}

	var payload []byte
	switch {
	case hexStr != "":
		var err error
		payload, err = hex.DecodeString(hexStr)
		if err != nil {
			return nil, errors.Wrap(err, "parsing payload")
		}
	case text != "":
		for _, r := range text {
			if r > 0xFE {
				return nil, errors.Errorf("character %q is not encodable", r)
			}
			payload = append(payload, byte(r+1))
		}
	default:
		return nil, errors.New("payload required, give hex or text")
	}

	if gs1 {
		payload = append([]byte{fnc1}, payload...)
	}

	return payload, nil
}

// encodeSymbol pads the payload to the symbol's data capacity and appends
// its redundancy. A zero side selects the smallest symbol that fits.
func encodeSymbol(enc *rs.Encoder, payload []byte, side int) (Codeword, error) {
	var (
		size symbol.Size
		err  error
	)
	if side == 0 {
		size, err = symbol.Fit(len(payload))
	} else {
		size, err = symbol.BySide(side)
	}
	if err != nil {
		return Codeword{}, err
	}

	padded, err := rs.Pad(payload, size.DataSize)
	if err != nil {
		return Codeword{}, err
	}

	factors, err := enc.FactorTable(size.ECCSize)
	if err != nil {
		return Codeword{}, err
	}

	ecc, err := enc.Encode(padded, factors)
	if err != nil {
		return Codeword{}, err
	}

	return Codeword{
		Symbol:   size.String(),
		DataSize: size.DataSize,
		ECCSize:  size.ECCSize,
		Data:     fmt.Sprintf("%X", payload),
		Pad:      fmt.Sprintf("%X", padded[len(payload):]),
		ECC:      fmt.Sprintf("%X", ecc),
	}, nil
}

func newFormat(v, r uint32, b bch.BCH) Format {
	return Format{
		Value:     v,
		Remainder: r,
		Protected: v<<uint(b.PolyWidth-1) | r,
	}
}

func init() {
	log.SetOutput(os.Stderr)
}
