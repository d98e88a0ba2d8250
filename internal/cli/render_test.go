package cli

import (
	"reflect"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format string
		multi  bool
		want   string
	}{
		{"DerivedFromInput", "diagram.json", "", "svg", false, "diagram.svg"},
		{"DerivedWithDir", "out/diagram.json", "", "png", false, "out/diagram.png"},
		{"ExplicitSingle", "diagram.json", "custom.svg", "svg", false, "custom.svg"},
		{"ExplicitMulti", "diagram.json", "custom", "svg", true, "custom.svg"},
		{"MultiDerived", "diagram.json", "", "dot", true, "diagram.dot"},
		{"NoExtension", "diagram", "", "svg", false, "diagram.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.output, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg,png,dot", []string{"svg", "png", "dot"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"svg", "png", "dot"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := validateFormats([]string{"svg", "pdf"}); err == nil {
		t.Error("unsupported format accepted")
	}
}
