// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"fmt"
	"time"
)

// Kind classifies a protocol record.
type Kind uint8

const (
	// KindPayload is a compiled dialog payload on its way to a
	// client.
	KindPayload Kind = 1

	// KindReply is a decoded client reply.
	KindReply Kind = 2

	// KindClosed marks a dialog dropped because its connection went
	// away before replying.
	KindClosed Kind = 3
)

// String returns "payload", "reply", or "closed".
func (k Kind) String() string {
	switch k {
	case KindPayload:
		return "payload"
	case KindReply:
		return "reply"
	case KindClosed:
		return "closed"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Text is one typed text-entry pair within a reply record.
type Text struct {
	EntryID int    `cbor:"entry_id"`
	Text    string `cbor:"text"`
}

// Record is one captured protocol event. Which fields are meaningful
// depends on Kind: payload records carry Encoding and Payload, reply
// records carry ButtonID, Switches, and Texts, closed records carry
// identity only.
type Record struct {
	// Time the event happened.
	Time time.Time `cbor:"time"`

	// Kind of event.
	Kind Kind `cbor:"kind"`

	// Conn labels the connection (the transport's String form, or a
	// pointer identity when it has none).
	Conn string `cbor:"conn"`

	// Serial and TypeID identify the dialog.
	Serial uint32 `cbor:"serial"`
	TypeID uint32 `cbor:"type_id"`

	// Encoding names the payload encoding ("plain" or "packed").
	// Payload records only.
	Encoding string `cbor:"encoding,omitempty"`

	// Payload is the complete compiled payload. Payload records only.
	Payload []byte `cbor:"payload,omitempty"`

	// ButtonID, Switches, and Texts mirror the reply fields. Reply
	// records only.
	ButtonID int    `cbor:"button_id,omitempty"`
	Switches []int  `cbor:"switches,omitempty"`
	Texts    []Text `cbor:"texts,omitempty"`
}
