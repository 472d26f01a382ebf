package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndRun(t *testing.T) {
	path := writeFile(t, `
scenario "add" {
  keys   = "5+3="
  expect = "8.0"
}

scenario "spaced keys" {
  keys   = "1 2 X 2 ="
  expect = 24
}

scenario "entry after operator" {
  keys   = "9-4"
  expect = "9.0 - "
  entry  = "4"
}

scenario "divide by zero" {
  keys   = "5/0="
  expect = "inf"
}

scenario "latched" {
  keys         = "5+3=="
  expect       = "8.0"
  latch_equals = true
}
`)

	scenarios, err := Load(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 5)
	assert.Equal(t, "add", scenarios[0].Name)
	assert.True(t, scenarios[4].LatchEquals)
	assert.Nil(t, scenarios[0].Entry)

	results := RunAll(scenarios)
	for _, r := range results {
		assert.True(t, r.Passed, r.String())
		assert.NoError(t, r.Err)
	}
	assert.Zero(t, Failed(results))
	assert.Equal(t, "PASS add", results[0].String())
}

func TestRunMismatch(t *testing.T) {
	tests := []struct {
		name string
		s    Scenario
		want string
	}{
		{
			name: "display",
			s:    Scenario{Name: "d", Keys: "2X3=", Expect: cty.StringVal("5.0")},
			want: `FAIL d: got "6.0", want "5.0"`,
		},
		{
			name: "total",
			s:    Scenario{Name: "n", Keys: "2X3=", Expect: cty.NumberIntVal(7)},
			want: `FAIL n: got "6.0", want "7.0"`,
		},
		{
			name: "entry",
			s:    Scenario{Name: "e", Keys: "12", Expect: cty.StringVal(""), Entry: ptr("1")},
			want: `FAIL e: got "entry 12", want "entry 1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Run(&tt.s)
			assert.False(t, r.Passed)
			assert.NoError(t, r.Err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	r := Run(&Scenario{Name: "k", Keys: "5%", Expect: cty.StringVal("")})
	require.Error(t, r.Err)
	assert.Contains(t, r.String(), "unknown key")

	r = Run(&Scenario{Name: "b", Keys: "5", Expect: cty.True})
	assert.ErrorIs(t, r.Err, ErrBadExpect)
	assert.False(t, r.Passed)

	r = Run(&Scenario{Name: "null", Keys: "5", Expect: cty.NullVal(cty.String)})
	assert.ErrorIs(t, r.Err, ErrBadExpect)

	assert.Equal(t, 2, Failed([]Result{{Passed: true}, {}, {Err: ErrBadExpect}}))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `scenario "a" { keys = "1" }`))
	assert.ErrorContains(t, err, "decode")

	_, err = Load(writeFile(t, `
scenario "a" {
  keys   = "1"
  expect = "1"
}
scenario "a" {
  keys   = "2"
  expect = "2"
}
`))
	assert.ErrorContains(t, err, "duplicate scenario")
}

func ptr(s string) *string { return &s }
