package main

// Input decoding. Raw terminal bytes are turned into logical keys: plain bytes
// pass through, escape sequences for arrows and navigation keys become
// synthetic key codes, anything unrecognized becomes a bare Escape.

import "errors"

// Key is a logical key. Values below 256 are raw bytes; synthetic keys start
// at 1000.
type Key int

const (
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// ctrlKey returns the key produced by holding Ctrl with k.
func ctrlKey(k byte) Key {
	return Key(k & 0x1f)
}

// isControl reports whether k is an ASCII control character.
func isControl(k Key) bool {
	return k < 32 || k == 127
}

// errNoInput is returned by a ByteSource whose poll window elapsed without a
// byte being available.
var errNoInput = errors.New("no input available")

// ByteSource delivers raw terminal input one byte at a time.
type ByteSource interface {
	ReadByte() (byte, error)
}

// KeyDecoder reads logical keys from a ByteSource.
type KeyDecoder struct {
	src ByteSource
}

// NewKeyDecoder returns a decoder reading from src.
func NewKeyDecoder(src ByteSource) *KeyDecoder {
	return &KeyDecoder{src: src}
}

// ReadKey blocks until the next key is available. Errors other than an empty
// poll window on the first byte are returned as is.
func (d *KeyDecoder) ReadKey() (Key, error) {
	var c byte
	for {
		b, err := d.src.ReadByte()
		if err == nil {
			c = b
			break
		}
		if !errors.Is(err, errNoInput) {
			return 0, err
		}
	}

	if Key(c) != KeyEscape {
		return Key(c), nil
	}
	return d.readEscape(), nil
}

// readEscape decodes what follows an escape byte. A stalled or failing read
// ends the sequence as a bare Escape.
func (d *KeyDecoder) readEscape() Key {
	seq0, err := d.src.ReadByte()
	if err != nil {
		return KeyEscape
	}
	seq1, err := d.src.ReadByte()
	if err != nil {
		return KeyEscape
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, err := d.src.ReadByte()
			if err != nil || seq2 != '~' {
				return KeyEscape
			}
			switch seq1 {
			case '1', '7':
				return KeyHome
			case '3':
				return KeyDelete
			case '4', '8':
				return KeyEnd
			case '5':
				return KeyPageUp
			case '6':
				return KeyPageDown
			}
			return KeyEscape
		}
		switch seq1 {
		case 'A':
			return KeyArrowUp
		case 'B':
			return KeyArrowDown
		case 'C':
			return KeyArrowRight
		case 'D':
			return KeyArrowLeft
		case 'H':
			return KeyHome
		case 'F':
			return KeyEnd
		}
	case 'O':
		switch seq1 {
		case 'H':
			return KeyHome
		case 'F':
			return KeyEnd
		}
	}
	return KeyEscape
}
