package main

// Single-line input in the message area, used by save-as, open, find, title
// and shell commands.

// promptObserver is told about the input and the key after every keypress.
type promptObserver func(input string, key Key)

// prompt reads a line of input, showing it through format (which must contain
// one %s). It returns false when the user cancelled with Escape. Enter only
// confirms non-empty input.
func (e *Editor) prompt(format string, observer promptObserver) (string, bool) {
	var buf []byte
	for {
		e.setStatusMessage(format, string(buf))
		if err := e.refresh(); err != nil {
			e.fail(err)
			return "", false
		}

		k, err := e.screen.ReadKey()
		if err != nil {
			e.fail(err)
			return "", false
		}

		switch {
		case k == KeyDelete || k == ctrlKey('h') || k == KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == KeyEscape:
			e.setStatusMessage("")
			if observer != nil {
				observer(string(buf), k)
			}
			return "", false
		case k == KeyEnter:
			if len(buf) != 0 {
				e.setStatusMessage("")
				if observer != nil {
					observer(string(buf), k)
				}
				return string(buf), true
			}
		case !isControl(k) && k < 128:
			buf = append(buf, byte(k))
		}

		if observer != nil {
			observer(string(buf), k)
		}
	}
}
