// Package services exposes the storage layer's public surface: account
// creation and verification, automation configuration, the automation-running
// flag, and the per-user admin thread record.
//
// # Error policy
//
// The repositories underneath report explicit errors; Store converts them at
// this boundary. CreateAccount is the only operation surfacing a concrete
// message (duplicate username vs. a generic failure). Every other operation
// maps both "no row" and store faults to a neutral absent/false result and
// logs the cause, so callers never see an exception and cannot tell a missing
// row from an unreachable store. VerifyCredentials additionally keeps
// unknown-username and wrong-password indistinguishable by design.
//
// Typical Usage
//
//	db, m, _ := repomanager.Open(cfg)
//	store := services.NewStore(db, m, logger)
//	_ = store.InitSchema(ctx)
//	ok, msg := store.CreateAccount(ctx, "alice", "s3cret")
//	id, ok := store.VerifyCredentials(ctx, "alice", "s3cret")
package services
