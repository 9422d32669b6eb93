// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"slices"
	"testing"
	"time"
)

// sampleRecords returns one record of each kind with whole-microsecond
// timestamps, which the stream codec preserves exactly.
func sampleRecords() []Record {
	base := time.Unix(1756000000, 123456000).UTC()
	return []Record{
		{
			Time:     base,
			Kind:     KindPayload,
			Conn:     "client-1",
			Serial:   11,
			TypeID:   0xAABBCCDD,
			Encoding: "plain",
			Payload:  []byte{0x01, 0x02, 0x03},
		},
		{
			Time:     base.Add(250 * time.Microsecond),
			Kind:     KindReply,
			Conn:     "client-1",
			Serial:   11,
			TypeID:   0xAABBCCDD,
			ButtonID: 5,
			Switches: []int{2, 7},
			Texts:    []Text{{EntryID: 3, Text: "abc"}},
		},
		{
			Time:   base.Add(2 * time.Second),
			Kind:   KindClosed,
			Conn:   "client-1",
			Serial: 12,
			TypeID: 0xAABBCCDD,
		},
	}
}

func assertRecordsEqual(t *testing.T, got, want []Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("record count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Time.Equal(want[i].Time) {
			t.Errorf("record %d time: got %v, want %v", i, got[i].Time, want[i].Time)
		}
		if got[i].Kind != want[i].Kind {
			t.Errorf("record %d kind: got %v, want %v", i, got[i].Kind, want[i].Kind)
		}
		if got[i].Conn != want[i].Conn {
			t.Errorf("record %d conn: got %q, want %q", i, got[i].Conn, want[i].Conn)
		}
		if got[i].Serial != want[i].Serial || got[i].TypeID != want[i].TypeID {
			t.Errorf("record %d identity: got (%d, %#x), want (%d, %#x)",
				i, got[i].Serial, got[i].TypeID, want[i].Serial, want[i].TypeID)
		}
		if got[i].Encoding != want[i].Encoding {
			t.Errorf("record %d encoding: got %q, want %q", i, got[i].Encoding, want[i].Encoding)
		}
		if !bytes.Equal(got[i].Payload, want[i].Payload) {
			t.Errorf("record %d payload: got % x, want % x", i, got[i].Payload, want[i].Payload)
		}
		if got[i].ButtonID != want[i].ButtonID {
			t.Errorf("record %d button: got %d, want %d", i, got[i].ButtonID, want[i].ButtonID)
		}
		if !slices.Equal(got[i].Switches, want[i].Switches) {
			t.Errorf("record %d switches: got %v, want %v", i, got[i].Switches, want[i].Switches)
		}
		if !slices.Equal(got[i].Texts, want[i].Texts) {
			t.Errorf("record %d texts: got %v, want %v", i, got[i].Texts, want[i].Texts)
		}
	}
}

func TestStreamRoundTrip(t *testing.T) {
	t.Parallel()
	records := sampleRecords()

	var stream bytes.Buffer
	if err := WriteAll(&stream, records); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := ReadAll(&stream)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	assertRecordsEqual(t, got, records)
}

func TestStreamEncodingIsDeterministic(t *testing.T) {
	t.Parallel()
	records := sampleRecords()

	var first, second bytes.Buffer
	if err := WriteAll(&first, records); err != nil {
		t.Fatalf("first WriteAll: %v", err)
	}
	if err := WriteAll(&second, records); err != nil {
		t.Fatalf("second WriteAll: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two encodings of the same records differ")
	}
}

func TestReadAllEmptyStream(t *testing.T) {
	t.Parallel()
	records, err := ReadAll(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records: got %d, want 0", len(records))
	}
}

func TestReadAllTruncatedStream(t *testing.T) {
	t.Parallel()
	var stream bytes.Buffer
	if err := WriteAll(&stream, sampleRecords()); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	// Chop into the final record: the stream must fail rather than
	// silently return a partial history.
	truncated := stream.Bytes()[:stream.Len()-3]
	if _, err := ReadAll(bytes.NewReader(truncated)); err == nil {
		t.Error("ReadAll of a truncated stream: expected error")
	}
}

func TestReadAllGarbage(t *testing.T) {
	t.Parallel()
	if _, err := ReadAll(bytes.NewReader([]byte("not a capture stream"))); err == nil {
		t.Error("ReadAll of garbage bytes: expected error")
	}
}

func TestStreamRoundTripEmptyOptionalFields(t *testing.T) {
	t.Parallel()
	// Closed records omit every optional field; they must survive the
	// round trip with those fields still zero.
	records := []Record{{
		Time:   time.Unix(1756000000, 0).UTC(),
		Kind:   KindClosed,
		Conn:   "client-9",
		Serial: 3,
		TypeID: 0x01020304,
	}}

	var stream bytes.Buffer
	if err := WriteAll(&stream, records); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := ReadAll(&stream)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	assertRecordsEqual(t, got, records)
	if got[0].Encoding != "" || got[0].Payload != nil || got[0].Switches != nil || got[0].Texts != nil {
		t.Errorf("optional fields: got %+v, want them empty", got[0])
	}
}
