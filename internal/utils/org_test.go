package utils

import (
	"testing"
)

func TestParseOrgName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: "google", want: "google"},
		{name: "hyphenated", input: "kubernetes-sigs", want: "kubernetes-sigs"},
		{name: "trims space", input: "  abc \n", want: "abc"},
		{name: "empty", input: "", wantErr: true},
		{name: "path traversal", input: "../etc", wantErr: true},
		{name: "slash", input: "owner/repo", wantErr: true},
		{name: "leading hyphen", input: "-acme", wantErr: true},
		{name: "double hyphen", input: "ac--me", wantErr: true},
		{name: "too long", input: "a123456789012345678901234567890123456789", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrgName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOrgName() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseOrgName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseOrgNames(t *testing.T) {
	got, err := ParseOrgNames([]string{"google", " abc"})
	if err != nil {
		t.Fatalf("ParseOrgNames() error = %v", err)
	}
	if len(got) != 2 || got[0] != "google" || got[1] != "abc" {
		t.Errorf("ParseOrgNames() = %v, want [google abc]", got)
	}

	if _, err := ParseOrgNames([]string{"google", "bad/name"}); err == nil {
		t.Error("ParseOrgNames() error = nil, want error")
	}
}
