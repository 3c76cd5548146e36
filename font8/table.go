package font8

// glyphs holds the shape and advance for every supported ASCII code. Codes
// left out of the literal stay at the zero Glyph, which Lookup reports as
// "no glyph". One byte per row, most significant bit leftmost.
var glyphs = [128]Glyph{
	'a': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b11100000,
		0b00010000,
		0b01110000,
		0b10010000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'b': {Advance: 6, Rows: [Height]uint8{
		0b10000000,
		0b11110000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	'c': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b01110000,
		0b10001000,
		0b10000000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'd': {Advance: 6, Rows: [Height]uint8{
		0b00001000,
		0b01111000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b01111000,
		0b00000000,
		0b00000000,
	}},
	'e': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b01110000,
		0b10001000,
		0b11110000,
		0b10000000,
		0b01111000,
		0b00000000,
		0b00000000,
	}},
	'f': {Advance: 4, Rows: [Height]uint8{
		0b01100000,
		0b10000000,
		0b11100000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'g': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b01100000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b01110000,
		0b00010000,
		0b11100000,
	}},
	'h': {Advance: 5, Rows: [Height]uint8{
		0b10000000,
		0b11100000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b00000000,
		0b00000000,
	}},
	'i': {Advance: 2, Rows: [Height]uint8{
		0b10000000,
		0b00000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'j': {Advance: 3, Rows: [Height]uint8{
		0b01000000,
		0b00000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b10000000,
	}},
	'k': {Advance: 5, Rows: [Height]uint8{
		0b10000000,
		0b10010000,
		0b10100000,
		0b11000000,
		0b10100000,
		0b10010000,
		0b00000000,
		0b00000000,
	}},
	'l': {Advance: 2, Rows: [Height]uint8{
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'm': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b11110000,
		0b10101000,
		0b10101000,
		0b10001000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'n': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b11100000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b00000000,
		0b00000000,
	}},
	'o': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b01100000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b01100000,
		0b00000000,
		0b00000000,
	}},
	'p': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b11100000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b11100000,
		0b10000000,
		0b10000000,
	}},
	'q': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b01100000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b01110000,
		0b00010000,
		0b00010000,
	}},
	'r': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b11100000,
		0b10010000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	's': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b01111000,
		0b10000000,
		0b01110000,
		0b00001000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	't': {Advance: 4, Rows: [Height]uint8{
		0b10000000,
		0b11100000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b01100000,
		0b00000000,
		0b00000000,
	}},
	'u': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'v': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b01010000,
		0b00100000,
		0b00000000,
		0b00000000,
	}},
	'w': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b10001000,
		0b10101000,
		0b10101000,
		0b10101000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'x': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b10001000,
		0b01010000,
		0b00100000,
		0b01010000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'y': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b10010000,
		0b01110000,
		0b00010000,
		0b11100000,
	}},
	'z': {Advance: 5, Rows: [Height]uint8{
		0b00000000,
		0b11110000,
		0b00010000,
		0b01100000,
		0b10000000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	'A': {Advance: 6, Rows: [Height]uint8{
		0b00100000,
		0b01010000,
		0b10001000,
		0b11111000,
		0b10001000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'B': {Advance: 6, Rows: [Height]uint8{
		0b11110000,
		0b10001000,
		0b11110000,
		0b10001000,
		0b10001000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	'C': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b10000000,
		0b10000000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'D': {Advance: 6, Rows: [Height]uint8{
		0b11110000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	'E': {Advance: 6, Rows: [Height]uint8{
		0b11111000,
		0b10000000,
		0b11110000,
		0b10000000,
		0b10000000,
		0b11111000,
		0b00000000,
		0b00000000,
	}},
	'F': {Advance: 6, Rows: [Height]uint8{
		0b11111000,
		0b10000000,
		0b11110000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'G': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b10000000,
		0b10011000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'H': {Advance: 6, Rows: [Height]uint8{
		0b10001000,
		0b10001000,
		0b11111000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'I': {Advance: 4, Rows: [Height]uint8{
		0b11100000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b11100000,
		0b00000000,
		0b00000000,
	}},
	'J': {Advance: 5, Rows: [Height]uint8{
		0b01110000,
		0b00010000,
		0b00010000,
		0b00010000,
		0b10010000,
		0b01100000,
		0b00000000,
		0b00000000,
	}},
	'K': {Advance: 6, Rows: [Height]uint8{
		0b10010000,
		0b10100000,
		0b11000000,
		0b10100000,
		0b10010000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'L': {Advance: 5, Rows: [Height]uint8{
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	'M': {Advance: 8, Rows: [Height]uint8{
		0b10000010,
		0b11000110,
		0b10101010,
		0b10010010,
		0b10010010,
		0b10000010,
		0b00000000,
		0b00000000,
	}},
	'N': {Advance: 6, Rows: [Height]uint8{
		0b10001000,
		0b11001000,
		0b10101000,
		0b10011000,
		0b10001000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'O': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'P': {Advance: 6, Rows: [Height]uint8{
		0b11110000,
		0b10001000,
		0b11110000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'Q': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b01010000,
		0b00111000,
		0b00000000,
		0b00000000,
	}},
	'R': {Advance: 6, Rows: [Height]uint8{
		0b11100000,
		0b10010000,
		0b11100000,
		0b10010000,
		0b10001000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'S': {Advance: 7, Rows: [Height]uint8{
		0b01111000,
		0b10000100,
		0b01100000,
		0b00011000,
		0b10000100,
		0b01111000,
		0b00000000,
		0b00000000,
	}},
	'T': {Advance: 6, Rows: [Height]uint8{
		0b11111000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b00000000,
		0b00000000,
	}},
	'U': {Advance: 6, Rows: [Height]uint8{
		0b10001000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'V': {Advance: 6, Rows: [Height]uint8{
		0b10001000,
		0b10001000,
		0b10001000,
		0b01010000,
		0b01010000,
		0b00100000,
		0b00000000,
		0b00000000,
	}},
	'W': {Advance: 8, Rows: [Height]uint8{
		0b10000010,
		0b10000010,
		0b10010010,
		0b10101010,
		0b11000110,
		0b10000010,
		0b00000000,
		0b00000000,
	}},
	'X': {Advance: 6, Rows: [Height]uint8{
		0b10001000,
		0b01010000,
		0b00100000,
		0b00100000,
		0b01010000,
		0b10001000,
		0b00000000,
		0b00000000,
	}},
	'Y': {Advance: 6, Rows: [Height]uint8{
		0b10001000,
		0b10001000,
		0b01010000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b00000000,
		0b00000000,
	}},
	'Z': {Advance: 5, Rows: [Height]uint8{
		0b11110000,
		0b00010000,
		0b00100000,
		0b01000000,
		0b10000000,
		0b11110000,
		0b00000000,
		0b00000000,
	}},
	'0': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b10011000,
		0b11001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'1': {Advance: 6, Rows: [Height]uint8{
		0b00100000,
		0b01100000,
		0b00100000,
		0b00100000,
		0b00100000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'2': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b00010000,
		0b01100000,
		0b10000000,
		0b11111000,
		0b00000000,
		0b00000000,
	}},
	'3': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b00110000,
		0b00001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'4': {Advance: 6, Rows: [Height]uint8{
		0b00010000,
		0b00110000,
		0b01010000,
		0b10010000,
		0b11111000,
		0b00010000,
		0b00000000,
		0b00000000,
	}},
	'5': {Advance: 6, Rows: [Height]uint8{
		0b11111000,
		0b10000000,
		0b11110000,
		0b00001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'6': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10000000,
		0b11110000,
		0b10001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'7': {Advance: 6, Rows: [Height]uint8{
		0b11111000,
		0b00010000,
		0b00100000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b00000000,
		0b00000000,
	}},
	'8': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b01110000,
		0b10001000,
		0b10001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	'9': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b10001000,
		0b01111000,
		0b00001000,
		0b01110000,
		0b00000000,
		0b00000000,
	}},
	' ': {Advance: 3, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	}},
	'!': {Advance: 2, Rows: [Height]uint8{
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b00000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'"': {Advance: 4, Rows: [Height]uint8{
		0b10100000,
		0b10100000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	}},
	'(': {Advance: 3, Rows: [Height]uint8{
		0b01000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b01000000,
		0b00000000,
	}},
	')': {Advance: 3, Rows: [Height]uint8{
		0b10000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b10000000,
		0b00000000,
	}},
	',': {Advance: 3, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b01000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	'-': {Advance: 4, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b00000000,
		0b11100000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	}},
	'_': {Advance: 6, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b11111000,
	}},
	'.': {Advance: 2, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	':': {Advance: 2, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b10000000,
		0b00000000,
		0b00000000,
		0b10000000,
		0b00000000,
		0b00000000,
	}},
	';': {Advance: 3, Rows: [Height]uint8{
		0b00000000,
		0b00000000,
		0b01000000,
		0b00000000,
		0b00000000,
		0b01000000,
		0b10000000,
		0b00000000,
	}},
	'?': {Advance: 6, Rows: [Height]uint8{
		0b01110000,
		0b10001000,
		0b00010000,
		0b00100000,
		0b00000000,
		0b00100000,
		0b00000000,
		0b00000000,
	}},
	'[': {Advance: 3, Rows: [Height]uint8{
		0b11000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b11000000,
		0b00000000,
	}},
	']': {Advance: 3, Rows: [Height]uint8{
		0b11000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b01000000,
		0b11000000,
		0b00000000,
	}},
	'{': {Advance: 4, Rows: [Height]uint8{
		0b00100000,
		0b01000000,
		0b01000000,
		0b11000000,
		0b01000000,
		0b01000000,
		0b00100000,
		0b00000000,
	}},
	'}': {Advance: 4, Rows: [Height]uint8{
		0b10000000,
		0b01000000,
		0b01000000,
		0b01100000,
		0b01000000,
		0b01000000,
		0b10000000,
		0b00000000,
	}},
}
