// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// opcode identifies a layout keyword. The numeric value doubles as the
// packed encoding's opcode id, so it is a wire constant: ids are
// stable across releases and never reused.
type opcode uint8

const (
	opNoMove           opcode = 1
	opNoClose          opcode = 2
	opNoDispose        opcode = 3
	opNoResize         opcode = 4
	opPage             opcode = 5
	opCheckerTrans     opcode = 6
	opResizePic        opcode = 7
	opButton           opcode = 8
	opCheckbox         opcode = 9
	opRadio            opcode = 10
	opGroup            opcode = 11
	opHTMLGump         opcode = 12
	opXMFHTMLGump      opcode = 13
	opXMFHTMLGumpColor opcode = 14
	opXMFHTMLTok       opcode = 15
	opGumpPic          opcode = 16
	opGumpPicTiled     opcode = 17
	opButtonTileArt    opcode = 18
	opTilePic          opcode = 19
	opTilePicHue       opcode = 20
	opItemProperty     opcode = 21
	opText             opcode = 22
	opCroppedText      opcode = 23
	opTextEntry        opcode = 24
	opTextEntryLimited opcode = 25
	opTooltip          opcode = 26
)

// opcodeKeywords maps each opcode to the keyword the plain layout
// grammar spells it with. Shared by the plain writer and, inverted,
// by the plain decoder.
var opcodeKeywords = map[opcode]string{
	opNoMove:           "nomove",
	opNoClose:          "noclose",
	opNoDispose:        "nodispose",
	opNoResize:         "noresize",
	opPage:             "page",
	opCheckerTrans:     "checkertrans",
	opResizePic:        "resizepic",
	opButton:           "button",
	opCheckbox:         "checkbox",
	opRadio:            "radio",
	opGroup:            "group",
	opHTMLGump:         "htmlgump",
	opXMFHTMLGump:      "xmfhtmlgump",
	opXMFHTMLGumpColor: "xmfhtmlgumpcolor",
	opXMFHTMLTok:       "xmfhtmltok",
	opGumpPic:          "gumppic",
	opGumpPicTiled:     "gumppictiled",
	opButtonTileArt:    "buttontileart",
	opTilePic:          "tilepic",
	opTilePicHue:       "tilepichue",
	opItemProperty:     "itemproperty",
	opText:             "text",
	opCroppedText:      "croppedtext",
	opTextEntry:        "textentry",
	opTextEntryLimited: "textentrylimited",
	opTooltip:          "tooltip",
}

// keywordOpcodes is the inverse of opcodeKeywords, for the plain
// decoder.
var keywordOpcodes = make(map[string]opcode, len(opcodeKeywords))

func init() {
	for code, keyword := range opcodeKeywords {
		keywordOpcodes[keyword] = code
	}
}

// keyword returns the plain-grammar spelling of the opcode. Every
// opcode the package emits has one; an empty return means a decoder
// met an id this build does not know.
func (code opcode) keyword() string {
	return opcodeKeywords[code]
}

// isFlag reports whether the opcode is one of the four top-level
// display-flag groups rather than a widget.
func (code opcode) isFlag() bool {
	return code >= opNoMove && code <= opNoResize
}

// attribute identifies a named in-group attribute. The plain grammar
// spells an attribute as "name=value" with no surrounding spaces
// around the equals sign; the packed grammar carries the numeric id.
// Hue is the only attribute the protocol defines today.
type attribute uint8

const attrHue attribute = 1

// attributeNames maps attribute ids to their plain-grammar names.
var attributeNames = map[attribute]string{
	attrHue: "hue",
}

// attributeIDs is the inverse of attributeNames, for the plain
// decoder.
var attributeIDs = make(map[string]attribute, len(attributeNames))

func init() {
	for id, name := range attributeNames {
		attributeIDs[name] = id
	}
}

func (a attribute) name() string {
	return attributeNames[a]
}
