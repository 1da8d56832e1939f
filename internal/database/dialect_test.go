package database

import (
	"strings"
	"testing"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"no placeholders", "SELECT 1", "SELECT 1"},
		{"single", "SELECT * FROM learners WHERE id = ?", "SELECT * FROM learners WHERE id = $1"},
		{"multiple", "INSERT INTO learners (id, name, avatar) VALUES (?, ?, ?)", "INSERT INTO learners (id, name, avatar) VALUES ($1, $2, $3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialectRewriteQuery(t *testing.T) {
	query := "SELECT document FROM progress_documents WHERE learner_id = ?"

	if got := NewSQLiteDialect().RewriteQuery(query); got != query {
		t.Errorf("SQLite rewrote query: %q", got)
	}
	if got := NewMySQLDialect().RewriteQuery(query); got != query {
		t.Errorf("MySQL rewrote query: %q", got)
	}
	if got := NewPostgresDialect().RewriteQuery(query); !strings.Contains(got, "$1") {
		t.Errorf("Postgres did not number placeholders: %q", got)
	}
}

// The progress repository binds (learner_id, document, document) to the
// upsert, so every dialect's statement must take exactly three
// placeholders.
func TestUpsertDocumentQueryPlaceholderCount(t *testing.T) {
	dialects := map[string]Dialect{
		"sqlite":   NewSQLiteDialect(),
		"postgres": NewPostgresDialect(),
		"mysql":    NewMySQLDialect(),
	}

	for name, d := range dialects {
		t.Run(name, func(t *testing.T) {
			if got := strings.Count(d.UpsertDocumentQuery(), "?"); got != 3 {
				t.Errorf("%s upsert has %d placeholders, want 3", name, got)
			}
		})
	}
}

func TestMigrationsSubdirs(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{NewSQLiteDialect(), "sqlite"},
		{NewPostgresDialect(), "postgres"},
		{NewMySQLDialect(), "mysql"},
	}

	for _, tt := range tests {
		if got := tt.dialect.MigrationsSubdir(); got != tt.want {
			t.Errorf("MigrationsSubdir = %q, want %q", got, tt.want)
		}
	}
}
