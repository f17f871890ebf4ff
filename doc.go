package strategies

// Package strategies validates the OpenPretext strategy catalog: a directory
// of declarative JSON documents checked before a downstream consumer imports
// them. It provides:
//
// - Per-document schema checking in two phases (structural gate, then flat independent field checks)
// - A stable finding model via Issues (JSON Pointer, code, severity, message)
// - Filename convention and cross-document identifier uniqueness enforcement
// - Aggregation and human/machine reporting for a whole catalog pass
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Localized messages live under i18n/, the schema export model under jsonschema/, and the CLI under cmd/openpretext-strategies.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rep, err := strategies.ValidateDir("strategies", strategies.DefaultOptions())
//	if err != nil { ... }                       // fatal: unreadable dir, empty catalog
//	_ = strategies.WriteText(os.Stdout, rep)
//	if !rep.Ok() { os.Exit(1) }
//
// Single documents validate the same way through ValidateBytes/ValidateFile.
