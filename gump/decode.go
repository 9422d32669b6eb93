// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Decode limits. Payloads this package compiles sit far below both;
// the caps bound allocation when the input is hostile. Without the
// layout cap a forged uncompressed-length field would make the
// inflater allocate and fill gigabytes.
const (
	maxPackedLayoutLength = 1 << 20
	maxStringCount        = math.MaxUint16
)

// FieldKind tags the three field shapes a token group can carry.
type FieldKind uint8

const (
	// FieldInt is a plain integer field. Booleans decode as integer
	// 0 or 1.
	FieldInt FieldKind = iota

	// FieldText is a literal text field (the @...@ form), carried
	// inline in the layout rather than through the string table.
	FieldText

	// FieldAttr is a named attribute field (the name=value form).
	FieldAttr
)

// Field is one decoded token-group field.
type Field struct {
	Kind FieldKind

	// Int holds the value for FieldInt and FieldAttr fields.
	Int int

	// Text holds the value for FieldText fields.
	Text string

	// Attr holds the attribute name for FieldAttr fields.
	Attr string
}

func intField(value int) Field { return Field{Kind: FieldInt, Int: value} }

func textField(value string) Field { return Field{Kind: FieldText, Text: value} }

func attrField(name string, value int) Field {
	return Field{Kind: FieldAttr, Attr: name, Int: value}
}

// String renders the field in plain-grammar spelling.
func (f Field) String() string {
	switch f.Kind {
	case FieldInt:
		return strconv.Itoa(f.Int)
	case FieldText:
		return "@" + f.Text + "@"
	case FieldAttr:
		return f.Attr + "=" + strconv.Itoa(f.Int)
	default:
		return fmt.Sprintf("field(%d)", uint8(f.Kind))
	}
}

// TokenGroup is one decoded layout group: a keyword and its fields in
// wire order. Both encodings decode to this form, which is what makes
// them comparable.
type TokenGroup struct {
	Keyword string
	Fields  []Field
}

// String renders the group in plain-grammar spelling, for example
// "{ button 10 20 4005 4007 1 0 1 }".
func (g TokenGroup) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	b.WriteString(g.Keyword)
	for _, field := range g.Fields {
		b.WriteByte(' ')
		b.WriteString(field.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Payload is a decoded dialog payload: the identity header, the
// layout as token groups, and the string table.
type Payload struct {
	// Encoding the payload was decoded from.
	Encoding Encoding

	// Serial and TypeID identify the dialog instance and its kind.
	Serial uint32
	TypeID uint32

	// X, Y are the initial screen position.
	X, Y int

	// EntryCount is informational. For packed payloads it is the
	// header's widget count. Plain payloads carry no such field, so
	// it is derived as the number of non-flag token groups, which
	// can exceed the widget count when an entry splices an extra
	// tooltip group.
	EntryCount int

	// Groups is the layout in wire order, display-flag groups
	// included.
	Groups []TokenGroup

	// Strings is the string table in index order.
	Strings []string
}

// DecodePlain parses a payload compiled with [EncodingPlain] back
// into its token groups and string table. Every length is
// bounds-checked, unknown keywords and attributes are errors, and
// trailing bytes are rejected. Decoding exists for diagnostics and
// tests; a server never consumes its own payloads in production.
func DecodePlain(payload []byte) (*Payload, error) {
	r := &payloadReader{data: payload}

	decoded := &Payload{Encoding: EncodingPlain}
	if err := readPayloadIdentity(r, decoded); err != nil {
		return nil, err
	}

	layoutLength, err := r.u16()
	if err != nil {
		return nil, fmt.Errorf("reading layout length: %w", err)
	}
	layout, err := r.take(int(layoutLength))
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	stringCount, err := r.u16()
	if err != nil {
		return nil, fmt.Errorf("reading string count: %w", err)
	}
	decoded.Strings, err = readStringBlock(r, int(stringCount))
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("payload has %d trailing bytes after the string table", r.remaining())
	}

	decoded.Groups, err = parsePlainLayout(layout)
	if err != nil {
		return nil, err
	}
	for _, group := range decoded.Groups {
		if !keywordOpcodes[group.Keyword].isFlag() {
			decoded.EntryCount++
		}
	}
	return decoded, nil
}

// DecodePacked parses a payload compiled with [EncodingPacked],
// inflating the layout blob and walking its binary tokens. Defensive
// on the same terms as [DecodePlain], plus the declared uncompressed
// length is capped and must match the inflated size exactly.
func DecodePacked(payload []byte) (*Payload, error) {
	r := &payloadReader{data: payload}

	decoded := &Payload{Encoding: EncodingPacked}
	if err := readPayloadIdentity(r, decoded); err != nil {
		return nil, err
	}

	entryCount, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading entry count: %w", err)
	}
	decoded.EntryCount = int(entryCount)

	uncompressedLength, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading uncompressed layout length: %w", err)
	}
	if uncompressedLength > maxPackedLayoutLength {
		return nil, fmt.Errorf("payload declares a %d-byte layout, limit %d", uncompressedLength, maxPackedLayoutLength)
	}
	compressedLength, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading compressed layout length: %w", err)
	}
	compressed, err := r.take(int(compressedLength))
	if err != nil {
		return nil, fmt.Errorf("reading compressed layout: %w", err)
	}
	layout, err := inflateLayout(compressed, int(uncompressedLength))
	if err != nil {
		return nil, err
	}

	stringCount, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading string count: %w", err)
	}
	if stringCount > maxStringCount {
		return nil, fmt.Errorf("payload declares %d strings, limit %d", stringCount, maxStringCount)
	}
	decoded.Strings, err = readStringBlock(r, int(stringCount))
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("payload has %d trailing bytes after the string table", r.remaining())
	}

	decoded.Groups, err = parsePackedLayout(layout)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// readPayloadIdentity reads the 16-byte identity header both
// encodings share: serial, type id, position.
func readPayloadIdentity(r *payloadReader, decoded *Payload) error {
	serial, err := r.u32()
	if err != nil {
		return fmt.Errorf("reading serial: %w", err)
	}
	typeID, err := r.u32()
	if err != nil {
		return fmt.Errorf("reading type id: %w", err)
	}
	x, err := r.i32()
	if err != nil {
		return fmt.Errorf("reading position: %w", err)
	}
	y, err := r.i32()
	if err != nil {
		return fmt.Errorf("reading position: %w", err)
	}
	decoded.Serial = serial
	decoded.TypeID = typeID
	decoded.X = int(x)
	decoded.Y = int(y)
	return nil
}

// inflateLayout zlib-inflates a packed layout and verifies the result
// is exactly the declared length. Reading one byte past the declared
// length catches an understated header without letting an overstated
// stream allocate more than the cap.
func inflateLayout(compressed []byte, declaredLength int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("inflating layout: %w", err)
	}
	defer reader.Close()

	var inflated bytes.Buffer
	inflated.Grow(declaredLength)
	n, err := io.Copy(&inflated, io.LimitReader(reader, int64(declaredLength)+1))
	if err != nil {
		return nil, fmt.Errorf("inflating layout: %w", err)
	}
	if n != int64(declaredLength) {
		return nil, fmt.Errorf("inflated layout is %d bytes, header declares %d", n, declaredLength)
	}
	return inflated.Bytes(), nil
}

// parsePlainLayout splits an ASCII layout into token groups. The
// grammar is whitespace-delimited tokens inside { } groups; @ opens a
// literal text field that runs to the next @ and may contain spaces
// and braces; name=value tokens are attributes.
func parsePlainLayout(layout []byte) ([]TokenGroup, error) {
	var groups []TokenGroup
	var current *TokenGroup
	pos := 0
	for pos < len(layout) {
		switch c := layout[pos]; c {
		case ' ':
			pos++
		case '{':
			if current != nil {
				return nil, fmt.Errorf("layout offset %d: group opened inside a group", pos)
			}
			groups = append(groups, TokenGroup{})
			current = &groups[len(groups)-1]
			pos++
		case '}':
			if current == nil {
				return nil, fmt.Errorf("layout offset %d: unmatched group end", pos)
			}
			if current.Keyword == "" {
				return nil, fmt.Errorf("layout offset %d: group without a keyword", pos)
			}
			current = nil
			pos++
		case '@':
			if current == nil || current.Keyword == "" {
				return nil, fmt.Errorf("layout offset %d: text field outside a group", pos)
			}
			length := bytes.IndexByte(layout[pos+1:], '@')
			if length < 0 {
				return nil, fmt.Errorf("layout offset %d: unterminated text field", pos)
			}
			current.Fields = append(current.Fields, textField(string(layout[pos+1:pos+1+length])))
			pos += length + 2
		default:
			end := pos
			for end < len(layout) {
				if c := layout[end]; c == ' ' || c == '{' || c == '}' || c == '@' {
					break
				}
				end++
			}
			token := string(layout[pos:end])
			if current == nil {
				return nil, fmt.Errorf("layout offset %d: token %q outside a group", pos, token)
			}
			if err := appendPlainToken(current, token); err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", pos, err)
			}
			pos = end
		}
	}
	if current != nil {
		return nil, fmt.Errorf("layout ends inside a group")
	}
	return groups, nil
}

// appendPlainToken classifies one bare token: the group's keyword if
// none is set yet, otherwise an attribute (name=value) or an integer.
func appendPlainToken(group *TokenGroup, token string) error {
	if group.Keyword == "" {
		if _, known := keywordOpcodes[token]; !known {
			return fmt.Errorf("unknown keyword %q", token)
		}
		group.Keyword = token
		return nil
	}
	if name, rest, isAttr := strings.Cut(token, "="); isAttr {
		if _, known := attributeIDs[name]; !known {
			return fmt.Errorf("unknown attribute %q", name)
		}
		value, err := strconv.ParseInt(rest, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid %s attribute value %q", name, rest)
		}
		group.Fields = append(group.Fields, attrField(name, int(value)))
		return nil
	}
	value, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer field %q", token)
	}
	group.Fields = append(group.Fields, intField(int(value)))
	return nil
}

// parsePackedLayout walks the binary token stream of an inflated
// packed layout.
func parsePackedLayout(layout []byte) ([]TokenGroup, error) {
	r := &payloadReader{data: layout}
	var groups []TokenGroup
	var current *TokenGroup
	for r.remaining() > 0 {
		offset := r.offset
		tag, err := r.u8()
		if err != nil {
			return nil, err
		}
		switch tag {
		case packedBegin:
			if current != nil {
				return nil, fmt.Errorf("layout offset %d: group opened inside a group", offset)
			}
			groups = append(groups, TokenGroup{})
			current = &groups[len(groups)-1]
		case packedEnd:
			if current == nil {
				return nil, fmt.Errorf("layout offset %d: unmatched group end", offset)
			}
			if current.Keyword == "" {
				return nil, fmt.Errorf("layout offset %d: group without a keyword", offset)
			}
			current = nil
		case packedTagOp:
			id, err := r.u8()
			if err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", offset, err)
			}
			if current == nil {
				return nil, fmt.Errorf("layout offset %d: keyword outside a group", offset)
			}
			if current.Keyword != "" {
				return nil, fmt.Errorf("layout offset %d: second keyword in a group", offset)
			}
			keyword := opcode(id).keyword()
			if keyword == "" {
				return nil, fmt.Errorf("layout offset %d: unknown opcode %d", offset, id)
			}
			current.Keyword = keyword
		case packedTagInt:
			if current == nil || current.Keyword == "" {
				return nil, fmt.Errorf("layout offset %d: field before a keyword", offset)
			}
			value, err := r.i32()
			if err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", offset, err)
			}
			current.Fields = append(current.Fields, intField(int(value)))
		case packedTagText:
			if current == nil || current.Keyword == "" {
				return nil, fmt.Errorf("layout offset %d: field before a keyword", offset)
			}
			length, err := r.u16()
			if err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", offset, err)
			}
			text, err := r.take(int(length))
			if err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", offset, err)
			}
			current.Fields = append(current.Fields, textField(string(text)))
		case packedTagAttr:
			if current == nil || current.Keyword == "" {
				return nil, fmt.Errorf("layout offset %d: field before a keyword", offset)
			}
			id, err := r.u8()
			if err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", offset, err)
			}
			name := attribute(id).name()
			if name == "" {
				return nil, fmt.Errorf("layout offset %d: unknown attribute %d", offset, id)
			}
			value, err := r.i32()
			if err != nil {
				return nil, fmt.Errorf("layout offset %d: %w", offset, err)
			}
			current.Fields = append(current.Fields, attrField(name, int(value)))
		default:
			return nil, fmt.Errorf("layout offset %d: unknown token tag 0x%02x", offset, tag)
		}
	}
	if current != nil {
		return nil, fmt.Errorf("layout ends inside a group")
	}
	return groups, nil
}
