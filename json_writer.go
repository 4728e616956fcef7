package trabalhista

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedObject builds a JSON object whose keys keep their insertion order, so that results
// read in the same order as the breakdown they describe. Its zero value is an empty object.
type orderedObject struct {
	buf bytes.Buffer
	err error
}

// Set marshals v under key. The first error is kept and returned by MarshalJSON.
func (o *orderedObject) Set(key string, v any) {
	if o.err != nil {
		return
	}
	value, err := json.Marshal(v)
	if err != nil {
		o.err = fmt.Errorf("field %q: %w", key, err)
		return
	}
	if o.buf.Len() > 0 {
		o.buf.WriteByte(',')
	}
	name, _ := json.Marshal(key)
	o.buf.Write(name)
	o.buf.WriteByte(':')
	o.buf.Write(value)
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, o.buf.Len()+2)
	out = append(out, '{')
	out = append(out, o.buf.Bytes()...)
	return append(out, '}'), nil
}
