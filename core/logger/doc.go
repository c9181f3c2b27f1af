// Package logger provides slog attribute helpers for the scheduling
// subsystem's structured logging.
//
// Attribute helpers use the empty Attr pattern for nil safety: a helper
// given a nil or zero value returns an empty slog.Attr, which slog drops,
// so call sites never need explicit nil checks:
//
//	log.Error("observer callback failed",
//	    logger.ObserverID(obs.ID()),
//	    logger.BatchSize(len(batch)),
//	    logger.Error(err),
//	)
package logger
