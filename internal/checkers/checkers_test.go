package checkers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/playctx/internal/checkers"
)

func TestJSONPathEquals_HappyPath(t *testing.T) {
	c := qt.New(t)

	doc := `{"name":"Workout Mix","track_count":42,"owner":{"active":true},"tracks":[{"name":"a"},{"name":"b"}]}`

	c.Assert(doc, checkers.JSONPathEquals("$.name"), "Workout Mix")
	c.Assert([]byte(doc), checkers.JSONPathEquals("$.track_count"), float64(42))
	c.Assert(doc, checkers.JSONPathEquals("$.owner.active"), true)
	c.Assert(doc, checkers.JSONPathEquals("$.tracks[1].name"), "b")
}

func TestJSONPathEquals_FailurePath(t *testing.T) {
	c := qt.New(t)

	noop := func(string, any) {}

	cases := []struct {
		name string
		got  any
		path string
		want any
	}{
		{"value differs", `{"a":1}`, "$.a", float64(2)},
		{"missing key", `{"a":1}`, "$.b", float64(1)},
		{"invalid json", `{"a":`, "$.a", float64(1)},
		{"unsupported input type", 42, "$.a", float64(1)},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			err := checkers.JSONPathEquals(tc.path).Check(tc.got, []any{tc.want}, noop)
			c.Assert(err, qt.IsNotNil)
		})
	}
}
