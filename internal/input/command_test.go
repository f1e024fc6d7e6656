package input

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Command
	}{
		{"click", `{"type":"click","x":100,"y":200}`, Command{Kind: KindClick, X: 100, Y: 200}},
		{"right click", `{"type":"right-click","x":0,"y":-3}`, Command{Kind: KindRightClick, X: 0, Y: -3}},
		{"fractional coordinates truncate", `{"type":"click","x":10.9,"y":-2.5}`, Command{Kind: KindClick, X: 10, Y: -2}},
		{"exponent coordinates", `{"type":"click","x":1e2,"y":2E1}`, Command{Kind: KindClick, X: 100, Y: 20}},
		{"numeric strings", `{"type":"click","x":"15","y":" 25 "}`, Command{Kind: KindClick, X: 15, Y: 25}},
		{"scroll", `{"type":"scroll","delta":-120}`, Command{Kind: KindScroll, Delta: -120}},
		{"int32 bounds", `{"type":"click","x":2147483647,"y":-2147483648}`, Command{Kind: KindClick, X: 2147483647, Y: -2147483648}},
		{"trailing whitespace", "{\"type\":\"scroll\",\"delta\":2} \n", Command{Kind: KindScroll, Delta: 2}},
		{"keydown", `{"type":"keydown","key":"Enter"}`, Command{Kind: KindKeyDown, Key: "Enter"}},
		{"text", `{"type":"text","text":"Hi!"}`, Command{Kind: KindText, Text: "Hi!"}},
		{"empty text", `{"type":"text","text":""}`, Command{Kind: KindText}},
		{"mousedown defaults to left", `{"type":"mousedown","x":1,"y":2}`, Command{Kind: KindMouseDown, X: 1, Y: 2, Button: ButtonLeft}},
		{"mouseup right", `{"type":"mouseup","x":1,"y":2,"button":"right"}`, Command{Kind: KindMouseUp, X: 1, Y: 2, Button: ButtonRight}},
		{"extra fields ignored", `{"type":"scroll","delta":3,"x":1}`, Command{Kind: KindScroll, Delta: 3}},
		{"missing type", `{"x":1,"y":2}`, Command{}},
		{"unknown type", `{"type":"double-click","x":1}`, Command{}},
		{"non-string type", `{"type":5}`, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target error
	}{
		{"click missing y", `{"type":"click","x":1}`, ErrMissingField},
		{"click bool x", `{"type":"click","x":true,"y":1}`, ErrInvalidField},
		{"click null x", `{"type":"click","x":null,"y":1}`, ErrInvalidField},
		{"click word x", `{"type":"click","x":"left","y":1}`, ErrInvalidField},
		{"click huge x", `{"type":"click","x":1e300,"y":1}`, ErrInvalidField},
		{"click x past int32", `{"type":"click","x":4294967396,"y":1}`, ErrInvalidField},
		{"click y below int32", `{"type":"click","x":1,"y":-2147483649}`, ErrInvalidField},
		{"click string x past int32", `{"type":"click","x":"4294967396","y":1}`, ErrInvalidField},
		{"scroll string delta", `{"type":"scroll","delta":"5"}`, ErrInvalidField},
		{"scroll delta not negatable", `{"type":"scroll","delta":-2147483648}`, ErrInvalidField},
		{"scroll missing delta", `{"type":"scroll"}`, ErrMissingField},
		{"scroll object delta", `{"type":"scroll","delta":{}}`, ErrInvalidField},
		{"keydown missing key", `{"type":"keydown"}`, ErrMissingField},
		{"keydown numeric key", `{"type":"keydown","key":13}`, ErrInvalidField},
		{"text array", `{"type":"text","text":["a"]}`, ErrInvalidField},
		{"mousedown bad button", `{"type":"mousedown","x":1,"y":1,"button":"middle"}`, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.NotEqual(t, KindNone, perr.Kind)
		})
	}
}

func TestParseCommandMalformed(t *testing.T) {
	for _, raw := range []string{"not-json", "", "[1,2]", "42", "null", `{"type":"click"`, `{"type":"scroll","delta":1} {}`,
		`{"type":"scroll","delta":1} }`, `{"type":"scroll","delta":1}]`} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseCommand([]byte(raw))
			require.Error(t, err)
			assert.NotEmpty(t, err.Error())

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, KindNone, perr.Kind)
		})
	}
}

func TestParseCommandSyntaxErrorIsWrapped(t *testing.T) {
	_, err := ParseCommand([]byte("not-json"))

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseCommand([]byte(`{"type":"scroll"}`))
	require.Error(t, err)

	assert.Equal(t, `parse scroll command: missing field "delta"`, err.Error())
}
