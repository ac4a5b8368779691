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
	"wireint"
)

// TickRecord is a numeric-heavy telemetry record. Every integer stays
// inside the 53-bit safe range so all three codecs carry it without
// loss. The same record is encoded with wireint cursors, protowire and
// msgpack for comparison.
type TickRecord struct {
	Sequence  uint64   `msgpack:"sequence"`
	Timestamp int64    `msgpack:"timestamp"`
	Flags     uint16   `msgpack:"flags"`
	Counters  []uint64 `msgpack:"counters"`
	Source    string   `msgpack:"source"`
	Payload   []byte   `msgpack:"payload"`
}

// CreateTickRecord builds the fixed test record shared by the
// benchmarks and the size comparison.
func CreateTickRecord() TickRecord {
	return TickRecord{
		Sequence:  987654321,
		Timestamp: 1724300000000,
		Flags:     0x8001,
		Counters:  []uint64{0, 127, 300, 16512, 1 << 20, 1 << 40, 1<<53 - 1},
		Source:    "node-7f.eu-west",
		Payload:   []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33},
	}
}

// sizeTickRecord returns the exact wireint encoding size of rec.
func sizeTickRecord(rec *TickRecord) (int, error) {
	n := wireint.SizeVarint(rec.Sequence) + 8 + 2
	n += wireint.SizeVarint(uint64(len(rec.Counters)))
	for _, c := range rec.Counters {
		n += wireint.SizeVarint(c)
	}
	strSize, err := wireint.SizeVarString(rec.Source, wireint.UTF8)
	if err != nil {
		return 0, err
	}
	n += strSize
	n += wireint.SizeVarBytes(rec.Payload)
	return n, nil
}

// MarshalTickRecord encodes rec into buf, which must be at least
// sizeTickRecord bytes, and returns the encoded prefix.
func MarshalTickRecord(buf []byte, rec *TickRecord) ([]byte, error) {
	w := wireint.NewWriter(buf)
	w.WriteVarint(rec.Sequence)
	w.Write64(rec.Timestamp)
	w.WriteU16BE(rec.Flags)
	w.WriteVarint(uint64(len(rec.Counters)))
	for _, c := range rec.Counters {
		w.WriteVarint(c)
	}
	w.WriteVarString(rec.Source, wireint.UTF8)
	w.WriteVarBytes(rec.Payload)
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalTickRecord decodes a record produced by MarshalTickRecord.
func UnmarshalTickRecord(data []byte, rec *TickRecord) error {
	r := wireint.NewReader(data)
	rec.Sequence = r.ReadVarint()
	rec.Timestamp = r.Read64()
	rec.Flags = r.ReadU16BE()
	count := r.ReadVarint()
	if err := r.Err(); err != nil {
		return err
	}
	rec.Counters = make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		rec.Counters = append(rec.Counters, r.ReadVarint())
	}
	rec.Source = r.ReadVarString(wireint.UTF8)
	rec.Payload = r.ReadVarBytes()
	return r.Err()
}
