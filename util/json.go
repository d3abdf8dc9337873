package util

import jsoniter "github.com/json-iterator/go"

var jsoni = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            false,
	ValidateJsonRawMessage: true,
}.Froze()

var jsoniNumber = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

func JSONMarshal(i interface{}) ([]byte, error) {
	return jsoni.Marshal(i)
}

func JSONMarshalIndent(i interface{}) ([]byte, error) {
	return jsoni.MarshalIndent(i, "", "  ")
}

func JSONUnmarshal(b []byte, i interface{}) error {
	return jsoni.Unmarshal(b, i)
}

// JSONUnmarshalWithNumber keeps json numbers as json.Number instead of
// float64, so integers can be told apart from fractions.
func JSONUnmarshalWithNumber(b []byte, i interface{}) error {
	return jsoniNumber.Unmarshal(b, i)
}
