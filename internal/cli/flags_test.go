package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"InputDir", flags.InputDir, "data/input"},
		{"OutputDir", flags.OutputDir, "data/output"},
		{"Source", flags.Source, "en"},
		{"Store", flags.Store, "file"},
		{"BatchSize", flags.BatchSize, 10},
		{"Delay", flags.Delay, time.Second},
		{"Provider", flags.Provider, "google"},
		{"LogLevel", flags.LogLevel, "info"},
		{"LogFormat", flags.LogFormat, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"Model", flags.Model},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flagsType := reflect.TypeOf(Flags{})

	expectedFields := []string{
		"CfgFile", "InputDir", "OutputDir", "Source", "Store", "Archive",
		"ListModels", "BatchSize", "Delay", "Provider", "Model",
		"RequestsPerSecond", "LogLevel", "LogFormat",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
