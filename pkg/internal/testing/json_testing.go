package testing

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONMarshalToReader marshal JSON or panic. To be used for tests only
func JSONMarshalToReader(v interface{}) io.Reader {
	payload, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(payload)
}

// JSONUnmarshalBuffer unmarshal provided buffer. To be used for tests only
func JSONUnmarshalBuffer(buffer *bytes.Buffer, v interface{}) {
	if err := json.Unmarshal(buffer.Bytes(), v); err != nil {
		panic(err)
	}
}
