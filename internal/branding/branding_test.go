package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "pipekit"},
		{"DisplayName", DisplayName(), "Pipekit"},
		{"HomeDir", HomeDir(), ".pipekit"},
		{"EnvPrefix", EnvPrefix(), "PIPEKIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "PIPEKIT_LOG_LEVEL" {
		t.Errorf("EnvVar(\"log_level\") = %q, want %q", got, "PIPEKIT_LOG_LEVEL")
	}
}
