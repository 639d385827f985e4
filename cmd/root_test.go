package cmd

import (
	"testing"

	"github.com/twiced-technology-gmbh/tasklist/internal/output"
)

func TestJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		env  string
		flag bool
		cmd  string
		want bool
	}{
		{"menu ignores env", "json", false, "", false},
		{"menu with flag", "", true, "", true},
		{"print with env", "json", false, "print", true},
		{"print with compact env", "compact", false, "print", false},
		{"print plain", "", false, "print", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(output.EnvFormat, tt.env)
			orig := flagJSON
			t.Cleanup(func() { flagJSON = orig })
			flagJSON = tt.flag

			cmd := rootCmd
			if tt.cmd != "" {
				found, _, err := rootCmd.Find([]string{tt.cmd})
				if err != nil {
					t.Fatalf("Find(%s): %v", tt.cmd, err)
				}
				cmd = found
			}
			if got := jsonErrors(cmd); got != tt.want {
				t.Errorf("jsonErrors = %v, want %v", got, tt.want)
			}
		})
	}
}
