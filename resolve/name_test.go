package resolve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/srlehn/ninepatch/resolve"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		file string
		want resolve.Name
	}{
		{`button.png`, resolve.Name{Base: `button`, Density: 1, Ext: `.png`}},
		{`button.9.png`, resolve.Name{Base: `button`, Density: 1, NinePatch: true, Ext: `.png`}},
		{`button-pressed@2x.9.png`, resolve.Name{Base: `button-pressed`, Density: 2, NinePatch: true, Ext: `.png`}},
		{`images/checkbox-indicator-checked@3x.png`, resolve.Name{Base: `checkbox-indicator-checked`, Density: 3, Ext: `.png`}},
		{`frame@1.5x.9.webp`, resolve.Name{Base: `frame`, Density: 1.5, NinePatch: true, Ext: `.webp`}},
		{`mail@home.png`, resolve.Name{Base: `mail@home`, Density: 1, Ext: `.png`}},
		{`tiny@0.5x.png`, resolve.Name{Base: `tiny@0.5x`, Density: 1, Ext: `.png`}},
		{`huge@Infx.png`, resolve.Name{Base: `huge@Infx`, Density: 1, Ext: `.png`}},
		{`odd@NaNx.png`, resolve.Name{Base: `odd@NaNx`, Density: 1, Ext: `.png`}},
		{`@2x.png`, resolve.Name{Base: `@2x`, Density: 1, Ext: `.png`}},
		{`noext`, resolve.Name{Base: `noext`, Density: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got := resolve.ParseName(tt.file)
			if diff := cmp.Diff(tt.want, got); diff != `` {
				t.Errorf("ParseName(%q) mismatch (-want +got):\n%s", tt.file, diff)
			}
		})
	}
}

func TestNameString(t *testing.T) {
	for _, file := range []string{`button.png`, `button.9.png`, `button-pressed@2x.9.png`, `frame@1.5x.9.webp`} {
		assert.Equal(t, file, resolve.ParseName(file).String())
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in   string
		want resolve.State
		ok   bool
	}{
		{``, resolve.Normal, true},
		{`normal`, resolve.Normal, true},
		{`pressed`, resolve.Pressed, true},
		{`checked|hover`, resolve.Checked | resolve.Hover, true},
		{`Focused, Pressed`, resolve.Focused | resolve.Pressed, true},
		{`disabled`, resolve.Normal, false},
	}
	for _, tt := range tests {
		got, ok := resolve.ParseState(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, `checked|hover`, (resolve.Hover | resolve.Checked).String())
	assert.Equal(t, `normal`, resolve.Normal.String())
}

func TestCandidates(t *testing.T) {
	got := resolve.Candidates(`button`, resolve.Focused|resolve.Hover|resolve.Pressed|resolve.Checked)
	want := []string{`button-checked`, `button-pressed`, `button-hover`, `button-focused`, `button`}
	if diff := cmp.Diff(want, got); diff != `` {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{`button`}, resolve.Candidates(`button`, resolve.Normal))
}
