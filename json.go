package pp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultIndent is the indentation used by [EncodeJSON] when none is given.
const DefaultIndent = "  "

// EncodeJSON renders s as indented JSON. Mapping keys keep their insertion
// order and every value is emitted as a JSON string. The output is not
// colorized; see [Palette.Colorize].
func EncodeJSON(s Shape, indent string) (string, error) {
	var compact bytes.Buffer
	var err error
	switch v := s.(type) {
	case Mapping:
		err = writeObject(&compact, v.Entries)
	case Sequence:
		err = writeArray(&compact, v.Items)
	case Collection:
		err = writeArray(&compact, v.Items)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
	if err != nil {
		return "", err
	}
	if indent == "" {
		indent = DefaultIndent
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return "", err
	}
	return out.String(), nil
}

func writeObject(buf *bytes.Buffer, entries []KeyValue) error {
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, e.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeString(buf, e.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeArray(buf *bytes.Buffer, items []string) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
