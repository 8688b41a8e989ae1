// File: lixenwraith/envconf/doc.go

// Package envconf builds a typed, read-only configuration object from a
// declarative schema evaluated once, at startup, against a key/value source
// such as the process environment.
//
// Features:
//   - Mandatory and optional fields with types, defaults, aliases and descriptions
//   - Lazy coercion: raw strings are converted when an accessor is first called
//   - Hard-fail or logged validation of required keys
//   - Computed properties, memoized exactly once unless caching is disabled
//   - Credentials fetched lazily from a secret store (in-memory or Vault KV-v2)
//   - Readiness report listing every field's status
//   - Layered sources: environment, dotenv files, TOML/YAML/JSON files, CLI args
//
// Quick Start:
//
//	cfg, err := envconf.New(envconf.DefaultOptions(), func(s *envconf.Schema) {
//	    s.Mandatory("database_url", envconf.String(), envconf.Description("primary DSN"))
//	    s.Optional("port", envconf.Int(), int64(8080))
//	    s.Optional("force_ssl", envconf.Bool(), true)
//	    s.Optional("allowed_hosts", envconf.Array(), nil, envconf.Aliases("hosts"))
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	url, _ := cfg.GetString("database_url")
//	ssl, _ := cfg.GetBool("force_ssl?")
//
// Keys are derived as upper(prefix + "_" + name): with prefix "app" the field
// "port" reads APP_PORT.
//
// Coercion rules:
//   - bool: "yes", "true" and "1" are true; anything else is false
//   - int: "no" and "false" read as nil; otherwise an integer literal
//   - array: comma separated, spaces after commas ignored
//   - json: any JSON document; errors name the key, never the value
//
// Failure timing:
// Declaration errors and, in hard-fail mode, missing required keys abort New.
// Coercion errors surface when the offending accessor is called.
//
// Thread Safety:
// A built Config is read-only. Cached properties fill their memo cell exactly
// once, even under concurrent first access.
package envconf
