// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSalt: Secret for session token HMAC (required)
  - OpenAIKey / OpenAIModel: Text completion provider credentials (optional)
  - BraveKey: Web search provider subscription token (optional)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-session-salt   Session token salt
	-openai-key     OpenAI API key
	-brave-key      Brave Search API key

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SALT   → -session-salt
	OPENAI_API_KEY → -openai-key
	OPENAI_MODEL   → (env only)
	BRAVE_API_KEY  → -brave-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres when set
  - SESSION_SALT must be provided

Provider keys are deliberately optional: the summary/completion/websearch
endpoints degrade to 502 when their provider is unconfigured, the ledger
endpoints keep working.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
