package completion

import (
	"testing"
)

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		want    [][2]string
	}{
		{
			name: "toggle expansion",
			options: []Option{
				{Name: "--[no-]colorize", Description: "Use color"},
			},
			want: [][2]string{
				{"--colorize", "Use color"},
				{"--no-colorize", "Use color"},
			},
		},
		{
			name: "plain flags keep source order",
			options: []Option{
				{Name: "--verbose", Description: "Verbose output"},
				{Name: "--force", Description: ""},
			},
			want: [][2]string{
				{"--verbose", "Verbose output"},
				{"--force", ""},
			},
		},
		{
			name: "unnamed options are dropped",
			options: []Option{
				{Name: "", Description: "orphan description"},
				{Name: "--quiet", Description: "Less output"},
			},
			want: [][2]string{
				{"--quiet", "Less output"},
			},
		},
		{
			name:    "empty input",
			options: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NormalizeOptions(tt.options)
			if flags.Len() != len(tt.want) {
				t.Fatalf("expected %d flags, got %d", len(tt.want), flags.Len())
			}
			i := 0
			for pair := flags.Oldest(); pair != nil; pair = pair.Next() {
				if pair.Key != tt.want[i][0] || pair.Value != tt.want[i][1] {
					t.Errorf("entry %d: expected %q -> %q, got %q -> %q",
						i, tt.want[i][0], tt.want[i][1], pair.Key, pair.Value)
				}
				i++
			}
		})
	}
}

func TestIsEligible(t *testing.T) {
	meta := getTestMetadata()

	tests := []struct {
		command string
		want    bool
	}{
		{"install", true},
		{"uninstall", true},
		{"uninstal", false}, // deprecated prefix, options notwithstanding
		{"info", false},     // no options at all
		{"doctor", true},
	}

	for _, tt := range tests {
		if got := IsEligible(meta, tt.command); got != tt.want {
			t.Errorf("IsEligible(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}
