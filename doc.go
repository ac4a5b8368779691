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

/*
Package wireint encodes and decodes the integer layouts of
length-prefixed binary wire formats: fixed-width 64-bit words in both
byte orders, compact-size varints, and offset base-128 varints, each
with a native fast path and an arbitrary-precision twin.

# Requirements

Go 1.24 or later is required.

# Quick Start

Every operation is a stateless function over a caller-owned buffer and
an offset, returning the offset just past the bytes it produced or
consumed so calls chain:

	buf := make([]byte, wireint.SizeVarint(300)+8)

	off, err := wireint.WriteVarint(buf, 300, 0)
	if err != nil {
		panic(err)
	}
	off, err = wireint.WriteU64(buf, 1<<40, off)
	if err != nil {
		panic(err)
	}

	v, size, err := wireint.ReadVarint(buf, 0) // v == 300, size == 3
	if err != nil {
		panic(err)
	}

For sequential records, the Reader and Writer cursors carry the offset
and latch the first error, so a chain needs one check at the end:

	w := wireint.NewWriter(buf)
	w.WriteVarint(300)
	w.WriteU64(1 << 40)
	if err := w.Err(); err != nil {
		panic(err)
	}

# Safe Integers

Native paths never produce or accept magnitudes above 1<<53-1
(MaxSafeInt), so decoded values survive a round-trip through IEEE 754
doubles in scripting runtimes and JSON pipelines. Anything larger
faults with an out-of-range error instead of truncating. The *Big
variants lift the limit to the full 64-bit range using math/big:

	b, err := wireint.ReadU64Big(buf, 0) // full 64-bit fidelity

The ReadU53/Read53 entrypoints are the deliberate exception: they mask
the high 11 bits off instead of faulting, so distinct wire values above
the safe range alias to smaller numbers. Use them only where that loss
is acceptable.

# Wire Formats

Fixed-width: exactly 8 bytes, little- or big-endian, two's complement
for signed values.

Compact-size varints (ReadVarint, WriteVarint): one literal byte below
0xfd, or a tag byte 0xfd/0xfe/0xff followed by a 2/4/8-byte
little-endian payload. Encoding 300 yields fd 2c 01. Decoders enforce
the minimal form: a payload that would have fit a shorter tier faults,
so every value has exactly one accepted encoding.

Base-128 varints (ReadBase128, WriteBase128): seven value bits per
byte, most significant group first, with a continuation flag in the
top bit. Every continuation byte adds an implicit +1 during
accumulation, which makes each byte-length class cover a contiguous
range with no redundant encodings: 0..127 in one byte, 128..16511 in
two, 16512.. in three. This differs from LEB128; the two formats do
not interoperate.

# Length-Prefixed Payloads

SizeVarlen, SizeVarBytes, and SizeVarString compute the total size of
a compact-size length prefix plus payload, for presizing buffers. The
string helpers measure under a StringEncoding (UTF8, Latin1, or
UTF16LE), and the cursors' WriteVarString/ReadVarString transcode
accordingly.

# Error Handling

Failures are hard and total: a faulting call returns before writing or
producing anything. There are two kinds, carried by the lightweight
Error type:

  - ErrKindOutOfBounds: an access at or past the buffer end, including
    a varint whose declared size overruns.
  - ErrKindOutOfRange: a native-path magnitude past the safe-integer
    limit, a non-minimal compact-size encoding, or a big-integer
    accumulation past the 64-bit ceiling.

Use IsOutOfBounds and IsOutOfRange to classify errors received as
plain error values.

# Concurrency

Package functions are pure transformations of (buffer, offset, value)
and safe for concurrent use, provided callers do not race on
overlapping buffer regions. Readers and Writers carry per-instance
state and are not safe for concurrent use.
*/
package wireint
