// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"wireint"
)

var (
	hexFlag     = flag.String("x", "", "hex bytes to decode (leading 0x and spaces allowed)")
	numFlag     = flag.String("n", "", "integer value to encode (decimal, or hex with 0x)")
	formatFlag  = flag.String("format", "varint", "wire format: u64, u64be, i64, i64be, varint, base128")
	bigFlag     = flag.Bool("big", false, "use the arbitrary-precision variants")
	helpFlag    = flag.Bool("help", false, "show help message")
	versionFlag = flag.Bool("version", false, "show version information")
)

const version = "1.0.0"

func main() {
	flag.Parse()

	if *helpFlag {
		showHelp()
		return
	}

	if *versionFlag {
		fmt.Printf("wireint version %s\n", version)
		return
	}

	switch {
	case *hexFlag != "" && *numFlag != "":
		fmt.Fprintln(os.Stderr, "wireint: -x and -n are mutually exclusive")
		os.Exit(1)
	case *hexFlag != "":
		if err := runDecode(*hexFlag, *formatFlag, *bigFlag); err != nil {
			fmt.Fprintf(os.Stderr, "wireint: %v\n", err)
			os.Exit(1)
		}
	case *numFlag != "":
		if err := runEncode(*numFlag, *formatFlag, *bigFlag); err != nil {
			fmt.Fprintf(os.Stderr, "wireint: %v\n", err)
			os.Exit(1)
		}
	default:
		showHelp()
		os.Exit(1)
	}
}

func runDecode(in, format string, useBig bool) error {
	cleaned := strings.TrimPrefix(strings.ReplaceAll(in, " ", ""), "0x")
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid hex %q: %v", in, err)
	}

	var value fmt.Stringer
	var size int
	switch format {
	case "u64":
		if useBig {
			v, err := wireint.ReadU64Big(data, 0)
			if err != nil {
				return err
			}
			value, size = v, 8
		} else {
			v, err := wireint.ReadU64(data, 0)
			if err != nil {
				return err
			}
			value, size = new(big.Int).SetUint64(v), 8
		}
	case "u64be":
		if useBig {
			v, err := wireint.ReadU64BEBig(data, 0)
			if err != nil {
				return err
			}
			value, size = v, 8
		} else {
			v, err := wireint.ReadU64BE(data, 0)
			if err != nil {
				return err
			}
			value, size = new(big.Int).SetUint64(v), 8
		}
	case "i64":
		if useBig {
			v, err := wireint.Read64Big(data, 0)
			if err != nil {
				return err
			}
			value, size = v, 8
		} else {
			v, err := wireint.Read64(data, 0)
			if err != nil {
				return err
			}
			value, size = big.NewInt(v), 8
		}
	case "i64be":
		if useBig {
			v, err := wireint.Read64BEBig(data, 0)
			if err != nil {
				return err
			}
			value, size = v, 8
		} else {
			v, err := wireint.Read64BE(data, 0)
			if err != nil {
				return err
			}
			value, size = big.NewInt(v), 8
		}
	case "varint":
		if useBig {
			v, n, err := wireint.ReadVarintBig(data, 0)
			if err != nil {
				return err
			}
			value, size = v, n
		} else {
			v, n, err := wireint.ReadVarint(data, 0)
			if err != nil {
				return err
			}
			value, size = new(big.Int).SetUint64(v), n
		}
	case "base128":
		if useBig {
			v, n, err := wireint.ReadBase128Big(data, 0)
			if err != nil {
				return err
			}
			value, size = v, n
		} else {
			v, n, err := wireint.ReadBase128(data, 0)
			if err != nil {
				return err
			}
			value, size = new(big.Int).SetUint64(v), n
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	fmt.Printf("value=%s size=%d\n", value, size)
	return nil
}

func runEncode(in, format string, useBig bool) error {
	v, ok := new(big.Int).SetString(in, 0)
	if !ok {
		return fmt.Errorf("invalid integer %q", in)
	}

	// Native paths narrow v up front; the writers still apply their
	// own safe-range assertions.
	var u uint64
	var i int64
	if !useBig {
		switch format {
		case "u64", "u64be", "varint", "base128":
			if v.Sign() < 0 || !v.IsUint64() {
				return fmt.Errorf("value %s is outside the unsigned 64-bit range", v)
			}
			u = v.Uint64()
		case "i64", "i64be":
			if !v.IsInt64() {
				return fmt.Errorf("value %s is outside the signed 64-bit range", v)
			}
			i = v.Int64()
		}
	}

	buf := make([]byte, wireint.MaxBase128Len)
	var n int
	var err error
	switch format {
	case "u64":
		if useBig {
			n, err = wireint.WriteU64Big(buf, v, 0)
		} else {
			n, err = wireint.WriteU64(buf, u, 0)
		}
	case "u64be":
		if useBig {
			n, err = wireint.WriteU64BEBig(buf, v, 0)
		} else {
			n, err = wireint.WriteU64BE(buf, u, 0)
		}
	case "i64":
		if useBig {
			n, err = wireint.Write64Big(buf, v, 0)
		} else {
			n, err = wireint.Write64(buf, i, 0)
		}
	case "i64be":
		if useBig {
			n, err = wireint.Write64BEBig(buf, v, 0)
		} else {
			n, err = wireint.Write64BE(buf, i, 0)
		}
	case "varint":
		if useBig {
			n, err = wireint.WriteVarintBig(buf, v, 0)
		} else {
			n, err = wireint.WriteVarint(buf, u, 0)
		}
	case "base128":
		if useBig {
			n, err = wireint.WriteBase128Big(buf, v, 0)
		} else {
			n, err = wireint.WriteBase128(buf, u, 0)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("hex=%s size=%d\n", hex.EncodeToString(buf[:n]), n)
	return nil
}

func showHelp() {
	fmt.Printf(`wireint - inspect and build wire-format integer encodings

Usage:
  wireint [options]

Options:
  -x string
        hex bytes to decode (leading 0x and spaces allowed)
  -n string
        integer value to encode (decimal, or hex with 0x)
  -format string
        wire format: u64, u64be, i64, i64be, varint, base128 (default "varint")
  -big
        use the arbitrary-precision variants (full 64-bit range)
  -help
        show this help message
  -version
        show version information

Examples:
  # Decode a compact-size varint
  wireint -x fd2c01
  value=300 size=3

  # Encode a value as a base-128 varint
  wireint -n 16512 -format base128
  hex=808000 size=3

  # Decode a full-range fixed-width word
  wireint -x ffffffffffffffff -format u64 -big
  value=18446744073709551615 size=8

Installation:
  go install wireint/cmd/wireint
`)
}
