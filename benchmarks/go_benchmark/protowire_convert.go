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

package benchmark

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Proto field numbers for TickRecord. Counters is a packed repeated
// varint field, timestamp an sfixed64.
const (
	fieldSequence  protowire.Number = 1
	fieldTimestamp protowire.Number = 2
	fieldFlags     protowire.Number = 3
	fieldCounters  protowire.Number = 4
	fieldSource    protowire.Number = 5
	fieldPayload   protowire.Number = 6
)

// AppendTickRecordProto encodes rec in protobuf wire format without
// generated code.
func AppendTickRecordProto(buf []byte, rec *TickRecord) []byte {
	buf = protowire.AppendTag(buf, fieldSequence, protowire.VarintType)
	buf = protowire.AppendVarint(buf, rec.Sequence)

	buf = protowire.AppendTag(buf, fieldTimestamp, protowire.Fixed64Type)
	buf = protowire.AppendFixed64(buf, uint64(rec.Timestamp))

	buf = protowire.AppendTag(buf, fieldFlags, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(rec.Flags))

	packed := 0
	for _, c := range rec.Counters {
		packed += protowire.SizeVarint(c)
	}
	buf = protowire.AppendTag(buf, fieldCounters, protowire.BytesType)
	buf = protowire.AppendVarint(buf, uint64(packed))
	for _, c := range rec.Counters {
		buf = protowire.AppendVarint(buf, c)
	}

	buf = protowire.AppendTag(buf, fieldSource, protowire.BytesType)
	buf = protowire.AppendString(buf, rec.Source)

	buf = protowire.AppendTag(buf, fieldPayload, protowire.BytesType)
	buf = protowire.AppendBytes(buf, rec.Payload)
	return buf
}

// ParseTickRecordProto decodes the wire format produced by
// AppendTickRecordProto. Unknown fields are skipped.
func ParseTickRecordProto(data []byte, rec *TickRecord) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case fieldSequence:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			rec.Sequence = v
			data = data[n:]
		case fieldTimestamp:
			v, n := protowire.ConsumeFixed64(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			rec.Timestamp = int64(v)
			data = data[n:]
		case fieldFlags:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if v > 0xffff {
				return fmt.Errorf("flags value %d exceeds 16 bits", v)
			}
			rec.Flags = uint16(v)
			data = data[n:]
		case fieldCounters:
			packed, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			rec.Counters = rec.Counters[:0]
			for len(packed) > 0 {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return protowire.ParseError(n)
				}
				rec.Counters = append(rec.Counters, v)
				packed = packed[n:]
			}
			data = data[n:]
		case fieldSource:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			rec.Source = v
			data = data[n:]
		case fieldPayload:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			rec.Payload = append(rec.Payload[:0], v...)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}
