package names

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "trims and drops blank rows",
			data: "Vega\n  Orion  \n\nPolaris\n",
			want: []string{"Vega", "Orion", "Polaris"},
		},
		{
			name: "keeps first field only",
			data: "Sirius,Alpha Canis Majoris\nCrux,Cru,Southern Cross\n",
			want: []string{"Sirius", "Crux"},
		},
		{
			name: "quoted field with comma",
			data: "\"Kaus, Australis\",Epsilon Sagittarii\n",
			want: []string{"Kaus, Australis"},
		},
		{
			name: "whitespace only and empty first field",
			data: "   \n,Orphan\nDeneb",
			want: []string{"Deneb"},
		},
		{
			name: "keeps duplicates in order",
			data: "Vega\nAltair\nVega\n",
			want: []string{"Vega", "Altair", "Vega"},
		},
		{
			name: "crlf line endings",
			data: "Vega\r\nRigel\r\n",
			want: []string{"Vega", "Rigel"},
		},
		{
			name: "empty input",
			data: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warn bytes.Buffer
			got := Load("test", []byte(tt.data), &warn)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, warn.String())
		})
	}
}

func TestLoad_SkipsMalformedRow(t *testing.T) {
	var warn bytes.Buffer
	got := Load("stars", []byte("\"Sirius\nRigel\n"), &warn)

	assert.Equal(t, []string{"Rigel"}, got)
	assert.Contains(t, warn.String(), "Warning: Failed to parse CSV row (stars line 1)")
	assert.NotContains(t, warn.String(), "line 2")
}

func TestLoad_SkipsInvalidUTF8(t *testing.T) {
	var warn bytes.Buffer
	got := Load("stars", []byte("Ve\xffga\nRigel\n"), &warn)

	assert.Equal(t, []string{"Rigel"}, got)
	assert.Contains(t, warn.String(), "Warning: Failed to parse CSV row (stars line 1): invalid UTF-8")
}

func TestLoad_LongRowDoesNotStopLoading(t *testing.T) {
	data := "Vega\n" + strings.Repeat("x", 70000) + "\nRigel\nDeneb\n"

	var warn bytes.Buffer
	got := Load("stars", []byte(data), &warn)

	require.Len(t, got, 4)
	assert.Equal(t, "Vega", got[0])
	assert.Equal(t, []string{"Rigel", "Deneb"}, got[2:])
	assert.Empty(t, warn.String())
}

func TestLoad_DoesNotModifyInput(t *testing.T) {
	data := []byte("Vega\r\nRigel\r\n")
	orig := append([]byte(nil), data...)

	Load("stars", data, nil)
	assert.Equal(t, orig, data)
}

func TestLoad_NilWarnWriter(t *testing.T) {
	got := Load("stars", []byte("Vega\n\"Sirius\n"), nil)
	assert.Equal(t, []string{"Vega"}, got)
}

func TestLoad_Deterministic(t *testing.T) {
	data := []byte("Vega\nRigel\n Deneb \n")
	assert.Equal(t, Load("a", data, nil), Load("a", data, nil))
}

func TestMerge(t *testing.T) {
	stars := Load("stars", []byte("Vega\n"), nil)
	constellations := Load("constellations", []byte("Cygnus\n"), nil)

	assert.Equal(t, []string{"Vega", "Cygnus"}, Merge(stars, constellations))
	assert.Equal(t, []string{"Cygnus", "Vega"}, Merge(constellations, stars))
	assert.Empty(t, Merge(nil, nil))
}

func TestMerge_DoesNotAlias(t *testing.T) {
	a := []string{"Vega"}
	merged := Merge(a, []string{"Cygnus"})
	merged[0] = "changed"
	assert.Equal(t, "Vega", a[0])
}

func TestPick_Empty(t *testing.T) {
	_, err := Pick(nil, NewSource())
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestPick_DoesNotMutate(t *testing.T) {
	list := []string{"Vega", "Rigel", "Deneb"}
	name, err := Pick(list, NewSource())
	require.NoError(t, err)
	assert.Contains(t, list, name)
	assert.Equal(t, []string{"Vega", "Rigel", "Deneb"}, list)
}

func TestPick_Uniform(t *testing.T) {
	list := []string{"Vega", "Rigel", "Deneb", "Altair"}
	const (
		seeds    = 40
		perSeed  = 1000
		draws    = seeds * perSeed
		expected = draws / 4
	)

	counts := make(map[string]int)
	for s := range seeds {
		rng := rand.New(rand.NewPCG(uint64(s), uint64(s)*7919+1))
		for range perSeed {
			name, err := Pick(list, rng)
			require.NoError(t, err)
			counts[name]++
		}
	}

	for _, name := range list {
		assert.InDelta(t, expected, counts[name], float64(expected)*0.05, name)
	}
}

func TestNewSource_Varies(t *testing.T) {
	a, b := NewSource(), NewSource()
	same := true
	for range 8 {
		if a.Uint64() != b.Uint64() {
			same = false
		}
	}
	assert.False(t, same)
}
