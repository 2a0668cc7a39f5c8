package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "mysql", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: "sqlite", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "sqlite with empty DataDir is valid at config level",
			config:  Config{Backend: "sqlite", DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "sqlite with sqlite url",
			config:  Config{Backend: "sqlite", DatabaseURL: "sqlite:///tmp/test.db"},
			wantErr: nil,
		},
		{
			name:    "postgres without url returns ErrDatabaseURLEmpty",
			config:  Config{Backend: "postgres"},
			wantErr: ErrDatabaseURLEmpty,
		},
		{
			name:    "postgres with postgresql url",
			config:  Config{Backend: "postgres", DatabaseURL: "postgresql://u:p@localhost/db"},
			wantErr: nil,
		},
		{
			name:    "backend and url disagree",
			config:  Config{Backend: "sqlite", DatabaseURL: "postgres://localhost/db"},
			wantErr: ErrDatabaseURLUnknown,
		},
		{
			name:    "unrecognized url scheme",
			config:  Config{Backend: "postgres", DatabaseURL: "mysql://localhost/db"},
			wantErr: ErrDatabaseURLUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBackendForURL(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr error
	}{
		{"postgres://localhost/db", BackendPostgres, nil},
		{"postgresql://localhost/db", BackendPostgres, nil},
		{"sqlite:///tmp/test.db", BackendSQLite, nil},
		{"/tmp/test.db", "", ErrDatabaseURLUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := BackendForURL(tt.url)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
